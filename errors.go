package moneybook

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no transaction carries the requested id. An update
// against a vanished id must surface this error; it is never silently turned
// into a create.
var ErrNotFound = errors.New("transaction not found")

// ValidationError reports rejected form fields. The operation that produced it
// performed no mutation and no session transition.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// SaveError reports that a mutation succeeded in memory but the synchronous
// write to storage failed. The ledger remains consistent; callers should
// surface the error as a warning, not roll back.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("ledger changed in memory but could not be persisted: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// CorruptError reports that the storage slot holds data that cannot be decoded
// back into a ledger. The blob is left untouched: losing data silently is not
// an option, the user decides what to do with it.
type CorruptError struct {
	Line int
	Err  error
}

func (e *CorruptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ledger data is corrupt at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("ledger data is corrupt: %v", e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }
