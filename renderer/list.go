package renderer

import (
	"github.com/ritaly/moneybook"
)

// ListEntry is one row of the rendered transaction list.
type ListEntry struct {
	ID          int64
	Emoji       string
	Description string
	Category    string
	Date        string
	Amount      string // signed and currency-formatted
}

// List is the view model for the transaction list.
type List struct {
	Filter  string
	Entries []ListEntry
}

// NewList builds the list view from a projection. The sign shown on each
// amount is derived from the transaction type; stored amounts are unsigned.
func NewList(view []moneybook.Transaction, filter moneybook.Filter, currency string) *List {
	l := &List{Filter: string(filter)}
	for _, tx := range view {
		sign := "-"
		if tx.Type == moneybook.Income {
			sign = "+"
		}
		l.Entries = append(l.Entries, ListEntry{
			ID:          tx.ID,
			Emoji:       tx.Category.Emoji(),
			Description: tx.Description,
			Category:    string(tx.Category),
			Date:        tx.Date.String(),
			Amount:      sign + " " + FormatMoney(tx.Amount, currency),
		})
	}
	return l
}

// RenderList renders the transaction list view to a markdown string.
func RenderList(l *List) string {
	return renderTemplate("list", "list.md", nil, l)
}
