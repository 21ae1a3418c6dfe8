// Package moneybook provides the core of a personal finance ledger: recording
// income and expense transactions, deriving aggregate totals, and producing
// filtered views for display. It is designed to be local-first and auditable,
// keeping the user's financial data in a single human-readable storage slot.
//
// The core functionalities include:
//   - Ledger Store: the ordered collection of transaction records with
//     add/update/remove/find operations and derived income, expense and
//     balance aggregates.
//   - Persistence: encoding and decoding the full ledger to and from a
//     single key-value storage slot in JSONL form, written through
//     synchronously on every mutation.
//   - Projections: pure, filtered, date-ordered views of the ledger for
//     list rendering.
//   - Edit sessions: the state machine deciding whether a submitted form
//     creates a new transaction or replaces the fields of one under edit.
//
// This package serves as the foundational logic for the `mbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package moneybook
