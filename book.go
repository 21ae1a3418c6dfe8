package moneybook

import (
	"errors"
	"fmt"
	"log/slog"
)

// NoteKind classifies a notification for the presentation layer.
type NoteKind string

const (
	NoteSuccess NoteKind = "success"
	NoteError   NoteKind = "error"
	NoteWarning NoteKind = "warning"
)

// Notification is a user-visible event emitted by book operations.
type Notification struct {
	Message string
	Kind    NoteKind
}

// Book is the command surface the presentation layer talks to. It owns the
// ledger, the edit session and the current filter selection, and queues the
// notifications each operation emits. It holds no ambient global state: every
// operation works on this explicit object.
type Book struct {
	ledger  *Ledger
	session Session
	filter  Filter
	log     *slog.Logger
	notes   []Notification
}

// NewBook wraps a ledger into a command surface. A nil logger falls back to
// slog.Default().
func NewBook(ledger *Ledger, log *slog.Logger) *Book {
	if log == nil {
		log = slog.Default()
	}
	return &Book{
		ledger: ledger,
		filter: FilterAll,
		log:    log,
	}
}

// Ledger exposes the underlying ledger for read access.
func (b *Book) Ledger() *Ledger { return b.ledger }

// Editing returns the id currently under edit, if any.
func (b *Book) Editing() (int64, bool) { return b.session.Editing() }

// Filter returns the current filter selection.
func (b *Book) Filter() Filter { return b.filter }

// Notifications drains the queue of pending notifications.
func (b *Book) Notifications() []Notification {
	notes := b.notes
	b.notes = nil
	return notes
}

func (b *Book) notify(kind NoteKind, format string, args ...any) {
	b.notes = append(b.notes, Notification{Message: fmt.Sprintf(format, args...), Kind: kind})
}

// reportSave turns a mutation's save outcome into a warning notification.
// A SaveError never rolls the in-memory change back.
func (b *Book) reportSave(err error) {
	var saveErr *SaveError
	if errors.As(err, &saveErr) {
		b.log.Warn("ledger not persisted", "err", saveErr.Err)
		b.notify(NoteWarning, "saved in memory only: %v", saveErr.Err)
	}
}

// SubmitForm validates the form and dispatches it: while idle it creates a new
// transaction, while editing it replaces the fields of the transaction under
// edit. In both cases a successful submission leaves the session idle.
//
// When the edited transaction vanished before submission the update fails with
// ErrNotFound, the session resets to idle and no transaction is created in its
// place.
func (b *Book) SubmitForm(f Form) (Transaction, error) {
	fields, err := parseForm(f)
	if err != nil {
		b.notify(NoteError, "%v", err)
		return Transaction{}, err
	}

	id, editing := b.session.Editing()
	if !editing {
		tx, err := b.ledger.Add(fields)
		b.reportSave(err)
		b.log.Info("transaction added", "id", tx.ID, "type", tx.Type, "amount", tx.Amount)
		b.notify(NoteSuccess, "transaction %q added", tx.Description)
		return tx, nil
	}

	tx, err := b.ledger.Update(id, fields)
	if errors.Is(err, ErrNotFound) {
		b.session.reset()
		b.log.Warn("edited transaction vanished", "id", id)
		b.notify(NoteError, "transaction %d no longer exists", id)
		return Transaction{}, err
	}
	b.reportSave(err)
	b.session.reset()
	b.log.Info("transaction updated", "id", tx.ID)
	b.notify(NoteSuccess, "transaction %q updated", tx.Description)
	return tx, nil
}

// RequestEdit switches the session to editing the given transaction and
// returns its current field values to prefill the entry form. This is the only
// way to enter the editing state. An unknown id fails with ErrNotFound and
// leaves the session untouched.
func (b *Book) RequestEdit(id int64) (Form, error) {
	tx, ok := b.ledger.Find(id)
	if !ok {
		b.notify(NoteError, "transaction %d not found", id)
		return Form{}, fmt.Errorf("cannot edit transaction %d: %w", id, ErrNotFound)
	}
	b.session.startEdit(id)
	return tx.form(), nil
}

// RequestDelete removes the given transaction after explicit confirmation.
// Declining aborts with zero side effects. Deleting the transaction currently
// under edit invalidates the session back to idle. Deleting an absent id
// reports that nothing was deleted; it is not an error.
func (b *Book) RequestDelete(id int64, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	deleted, err := b.ledger.Remove(id)
	if !deleted {
		b.notify(NoteWarning, "transaction %d not found, nothing deleted", id)
		return false, nil
	}
	b.reportSave(err)
	if editing, active := b.session.Editing(); active && editing == id {
		// The record under edit is gone, the session must not point at it.
		b.session.reset()
	}
	b.log.Info("transaction deleted", "id", id)
	b.notify(NoteSuccess, "transaction %d deleted", id)
	return true, nil
}

// Cancel resets the session to idle from any state.
func (b *Book) Cancel() { b.session.reset() }

// SelectFilter sets the current filter. Unknown values fail fast and leave the
// selection unchanged.
func (b *Book) SelectFilter(value string) error {
	f, err := ParseFilter(value)
	if err != nil {
		b.notify(NoteError, "%v", err)
		return err
	}
	b.filter = f
	return nil
}

// Projection returns the displayable view of the ledger under the current
// filter: most recent date first, same-day records by id ascending.
func (b *Book) Projection() []Transaction {
	view, err := Project(b.ledger, b.filter)
	if err != nil {
		// The filter field only ever holds parsed values.
		panic(err)
	}
	return view
}

// Aggregates returns the current income, expense and balance sums.
func (b *Book) Aggregates() Aggregates {
	return b.ledger.Aggregates()
}
