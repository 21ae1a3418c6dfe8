package moneybook

import (
	"fmt"
	"slices"
)

// Filter selects which transaction types a projection shows.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// ParseFilter parses a string into a Filter. Unknown values fail fast; they
// are never treated as FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterIncome, FilterExpense:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("unknown filter: %q", s)
	}
}

func (f Filter) accepts(tx Transaction) bool {
	switch f {
	case FilterAll:
		return true
	case FilterIncome:
		return tx.Type == Income
	case FilterExpense:
		return tx.Type == Expense
	default:
		return false
	}
}

// Project derives the displayable view of the ledger: the transactions
// matching the filter, ordered by date descending. Records sharing a date are
// ordered by id ascending, so repeated calls always yield the same sequence.
// The ledger is never mutated.
func Project(l *Ledger, f Filter) ([]Transaction, error) {
	switch f {
	case FilterAll, FilterIncome, FilterExpense:
	default:
		return nil, fmt.Errorf("unknown filter: %q", f)
	}

	view := make([]Transaction, 0, l.Len())
	for tx := range l.Transactions() {
		if f.accepts(tx) {
			view = append(view, tx)
		}
	}
	slices.SortFunc(view, func(a, b Transaction) int {
		// Most recent first; same-day records by id ascending.
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return view, nil
}
