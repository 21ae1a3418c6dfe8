package moneybook

import (
	"bytes"
	"fmt"

	"github.com/ritaly/moneybook/kv"
)

// DefaultSlot is the storage slot the ledger lives in.
const DefaultSlot = "transactions"

// Slot adapts a kv.Store slot into ledger persistence. Save serializes the
// full ledger into one blob and overwrites the slot; Load reads it back.
type Slot struct {
	store kv.Store
	key   string
}

// NewSlot binds a slot key inside a store. An empty key means DefaultSlot.
func NewSlot(store kv.Store, key string) *Slot {
	if key == "" {
		key = DefaultSlot
	}
	return &Slot{store: store, key: key}
}

// Save encodes the whole ledger and overwrites the slot in a single write.
func (s *Slot) Save(l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := s.store.Set(s.key, buf.Bytes()); err != nil {
		return fmt.Errorf("could not store ledger: %w", err)
	}
	return nil
}

// Load reads the slot and rebuilds the ledger, already attached to this slot
// so later mutations write through. An absent slot yields an empty ledger,
// not an error. A present but unreadable blob fails with a *CorruptError.
func (s *Slot) Load() (*Ledger, error) {
	data, ok, err := s.store.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger slot: %w", err)
	}
	ledger := NewLedger()
	if ok {
		ledger, err = DecodeLedger(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	}
	ledger.Attach(s)
	return ledger, nil
}

var _ Saver = (*Slot)(nil)
