// Package kv provides the single-slot key-value storage the ledger persists
// into. A slot holds one opaque blob; every write fully overwrites the
// previous value.
package kv

// Store is a named-slot key-value storage. Set is atomic at the granularity of
// a single write: a concurrent reader sees either the previous blob or the new
// one, never a partial write.
type Store interface {
	// Get returns the blob stored under key. ok is false when the slot has
	// never been written; that is not an error.
	Get(key string) (value []byte, ok bool, err error)
	// Set overwrites the blob stored under key.
	Set(key string, value []byte) error
	Close() error
}
