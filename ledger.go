package moneybook

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// IDSource produces candidate ids for new transactions. The ledger still
// guarantees uniqueness on top of whatever the source yields.
type IDSource interface {
	NextID() int64
}

// clockIDs derives ids from the wall clock at millisecond resolution.
type clockIDs struct{}

func (clockIDs) NextID() int64 { return time.Now().UnixMilli() }

// ClockIDs returns the default id source, based on the creation timestamp.
func ClockIDs() IDSource { return clockIDs{} }

type sequenceIDs struct{ next int64 }

func (s *sequenceIDs) NextID() int64 {
	id := s.next
	s.next++
	return id
}

// SequenceIDs returns a deterministic counter id source, starting at start.
// It exists to make tests reproducible.
func SequenceIDs(start int64) IDSource { return &sequenceIDs{next: start} }

// Saver persists the full ledger to durable storage in one write.
type Saver interface {
	Save(*Ledger) error
}

// Aggregates holds the derived sums over the ledger. Values carry full
// precision; rounding to display decimals happens at the presentation
// boundary only.
type Aggregates struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Ledger owns the ordered collection of transaction records.
//
// Ids are pairwise distinct. Insertion order carries no meaning; any display
// order is derived by projections. Every successful mutation is synchronously
// written to the attached saver before the call returns, so a reader of
// storage immediately after a mutation sees the new state. When the write
// fails the in-memory change stands and the mutation reports a *SaveError
// alongside its result.
type Ledger struct {
	transactions []Transaction
	ids          IDSource
	saver        Saver
}

// NewLedger creates an empty ledger with the default clock id source and no
// attached storage.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		ids:          ClockIDs(),
	}
}

// SetIDSource replaces the id source used for new transactions.
func (l *Ledger) SetIDSource(s IDSource) { l.ids = s }

// Attach connects the ledger to durable storage. Every mutation from now on
// writes through it. A nil saver detaches.
func (l *Ledger) Attach(s Saver) { l.saver = s }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Find returns the transaction with the given id.
func (l *Ledger) Find(id int64) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

func (l *Ledger) contains(id int64) bool {
	_, ok := l.Find(id)
	return ok
}

// Transactions returns an iterator over every transaction in insertion order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Add assigns a fresh unique id to the given fields, appends the record, and
// writes the ledger through to storage. The fields are stored as given: field
// validation is the caller's responsibility. A non-nil error is always a
// *SaveError; the returned transaction is in the ledger either way.
func (l *Ledger) Add(f Fields) (Transaction, error) {
	id := l.ids.NextID()
	// The source may collide with an existing id (a clock source called twice
	// within a millisecond does). Disambiguate rather than fail.
	for l.contains(id) {
		id++
	}
	tx := Transaction{ID: id, Fields: f}
	l.transactions = append(l.transactions, tx)
	return tx, l.save()
}

// Update replaces all fields of the transaction with the given id, preserving
// the id, and writes the ledger through to storage. It fails with ErrNotFound
// when no transaction has that id; it never creates one instead.
func (l *Ledger) Update(id int64, f Fields) (Transaction, error) {
	for i, tx := range l.transactions {
		if tx.ID == id {
			updated := Transaction{ID: id, Fields: f}
			l.transactions[i] = updated
			return updated, l.save()
		}
	}
	return Transaction{}, fmt.Errorf("cannot update transaction %d: %w", id, ErrNotFound)
}

// Remove deletes the transaction with the given id and reports whether a
// deletion occurred. Removing an absent id is a no-op, not an error, and does
// not touch storage.
func (l *Ledger) Remove(id int64) (bool, error) {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return true, l.save()
		}
	}
	return false, nil
}

// Aggregates computes the income, expense and balance sums over the ledger.
// Sums over zero records are zero.
func (l *Ledger) Aggregates() Aggregates {
	var a Aggregates
	for _, tx := range l.transactions {
		switch tx.Type {
		case Income:
			a.Income = a.Income.Add(tx.Amount)
		case Expense:
			a.Expense = a.Expense.Add(tx.Amount)
		}
	}
	a.Balance = a.Income.Sub(a.Expense)
	return a
}

func (l *Ledger) save() error {
	if l.saver == nil {
		return nil
	}
	if err := l.saver.Save(l); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// canonicalSort orders transactions by date ascending, ties broken by id
// ascending. This is the order used for persistence so that encoding is
// deterministic.
func (l *Ledger) canonicalSort() {
	slices.SortFunc(l.transactions, func(a, b Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
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
}
