package moneybook

import (
	"fmt"
	"strings"

	"github.com/ritaly/moneybook/date"
	"github.com/shopspring/decimal"
)

// Form carries the raw field values the presentation layer collected. Every
// value is text; validation and conversion happen here, before any dispatch.
type Form struct {
	Description string
	Amount      string
	Category    string
	Type        string
	Date        string
}

// parseForm validates the raw form and converts it into ledger fields. Any
// failure yields a single user-visible *ValidationError and nothing else
// happens: no mutation, no session transition.
func parseForm(f Form) (Fields, error) {
	description := strings.TrimSpace(f.Description)
	if description == "" {
		return Fields{}, &ValidationError{Msg: "description must not be empty"}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return Fields{}, &ValidationError{Msg: fmt.Sprintf("amount %q is not a number", f.Amount)}
	}
	if !amount.IsPositive() {
		return Fields{}, &ValidationError{Msg: fmt.Sprintf("amount must be greater than zero, got %s", amount)}
	}

	category, err := ParseCategory(f.Category)
	if err != nil {
		return Fields{}, &ValidationError{Msg: err.Error()}
	}
	typ, err := ParseType(f.Type)
	if err != nil {
		return Fields{}, &ValidationError{Msg: err.Error()}
	}

	// An empty date means "today", the same default the entry form shows.
	day := date.Today()
	if f.Date != "" {
		day, err = date.Parse(f.Date)
		if err != nil {
			return Fields{}, &ValidationError{Msg: fmt.Sprintf("invalid date %q, want %s", f.Date, date.Format)}
		}
	}

	return Fields{
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        typ,
		Date:        day,
	}, nil
}

// form converts a transaction back into raw field values, used to prefill the
// entry form when an edit starts.
func (t Transaction) form() Form {
	return Form{
		Description: t.Description,
		Amount:      t.Amount.String(),
		Category:    string(t.Category),
		Type:        string(t.Type),
		Date:        t.Date.String(),
	}
}

// Session tracks the edit state: idle, or editing one specific transaction.
// At most one transaction is ever being edited.
type Session struct {
	editing int64
	active  bool
}

// Editing returns the id under edit, if any.
func (s *Session) Editing() (int64, bool) { return s.editing, s.active }

func (s *Session) startEdit(id int64) {
	s.editing = id
	s.active = true
}

func (s *Session) reset() {
	s.editing = 0
	s.active = false
}
