package moneybook

import (
	"fmt"

	"github.com/ritaly/moneybook/date"
	"github.com/shopspring/decimal"
)

// Type classifies a transaction as money coming in or going out.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// ParseType parses a string into a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Category is one of the fixed spending/earning categories.
type Category string

const (
	Salary     Category = "salary"
	Freelance  Category = "freelance"
	Investment Category = "investment"
	Food       Category = "food"
	Transport  Category = "transport"
	Health     Category = "health"
	Leisure    Category = "leisure"
	Education  Category = "education"
	Housing    Category = "housing"
	Other      Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	Salary, Freelance, Investment, Food, Transport,
	Health, Leisure, Education, Housing, Other,
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Emoji returns the pictogram shown next to the category in listings.
func (c Category) Emoji() string {
	switch c {
	case Salary:
		return "💼"
	case Freelance:
		return "💻"
	case Investment:
		return "📈"
	case Food:
		return "🍔"
	case Transport:
		return "🚗"
	case Health:
		return "🏥"
	case Leisure:
		return "🎮"
	case Education:
		return "📚"
	case Housing:
		return "🏠"
	default:
		return "📦"
	}
}

// Fields holds every user-editable attribute of a transaction.
// The amount is always a positive magnitude: the sign shown to the user is
// derived from Type at display time, never stored.
type Fields struct {
	Description string
	Amount      decimal.Decimal
	Category    Category
	Type        Type
	Date        date.Date
}

// Transaction is a single ledger record: immutable id plus editable fields.
type Transaction struct {
	ID int64
	Fields
}

// Equal reports whether two transactions have the same id and fields.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Type == o.Type &&
		t.Date == o.Date
}

// MarshalJSON encodes the transaction with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Append("type", t.Type)
	w.Append("date", t.Date)
	return w.MarshalJSON()
}
