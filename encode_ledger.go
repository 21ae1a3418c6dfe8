package moneybook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ritaly/moneybook/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txRecord mirrors the persisted shape of a transaction for decoding.
type txRecord struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Date        date.Date       `json:"date"`
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction %d: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction %d: %w", tx.ID, err)
	}
	return nil
}

// EncodeLedger persists the full ledger to an io.Writer in JSONL format, one
// transaction per line. Transactions are written in canonical order (date
// ascending, ties by id ascending) and JSON keys keep a stable order, so
// encoding the same ledger always yields the same bytes.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.canonicalSort()
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream and rebuilds the ledger. An empty stream
// yields an empty ledger. Any line that cannot be decoded, or that violates a
// ledger invariant (duplicate id, non-positive amount, unknown enum value),
// fails with a *CorruptError naming the offending line; the data is never
// silently discarded.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var rec txRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, &CorruptError{Line: line, Err: err}
		}
		tx, err := rec.transaction()
		if err != nil {
			return nil, &CorruptError{Line: line, Err: err}
		}
		if ledger.contains(tx.ID) {
			return nil, &CorruptError{Line: line, Err: fmt.Errorf("duplicate transaction id %d", tx.ID)}
		}
		ledger.transactions = append(ledger.transactions, tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger data: %w", err)
	}
	return ledger, nil
}

// transaction validates the decoded record against the ledger invariants and
// converts it to a Transaction.
func (r txRecord) transaction() (Transaction, error) {
	if r.Description == "" {
		return Transaction{}, fmt.Errorf("transaction %d has an empty description", r.ID)
	}
	if !r.Amount.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction %d has a non-positive amount %s", r.ID, r.Amount)
	}
	category, err := ParseCategory(r.Category)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %d: %w", r.ID, err)
	}
	typ, err := ParseType(r.Type)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %d: %w", r.ID, err)
	}
	return Transaction{
		ID: r.ID,
		Fields: Fields{
			Description: r.Description,
			Amount:      r.Amount,
			Category:    category,
			Type:        typ,
			Date:        r.Date,
		},
	}, nil
}
