package renderer

import (
	"github.com/ritaly/moneybook"
)

// Summary is the view model for the aggregate totals.
type Summary struct {
	Income   string
	Expense  string
	Balance  string
	Negative bool // true when the balance is below zero
}

// NewSummary builds the summary view from the ledger aggregates.
func NewSummary(a moneybook.Aggregates, currency string) *Summary {
	return &Summary{
		Income:   FormatMoney(a.Income, currency),
		Expense:  FormatMoney(a.Expense, currency),
		Balance:  FormatMoney(a.Balance, currency),
		Negative: a.Balance.IsNegative(),
	}
}

// RenderSummary renders the aggregate totals to a markdown string.
func RenderSummary(s *Summary) string {
	return renderTemplate("summary", "summary.md", nil, s)
}
