package kv

import (
	"bytes"
	"testing"
)

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore() unexpected error: %v", err)
	}
	defer store.Close()

	// A never-written slot reads back as absent, not as an error.
	_, ok, err := store.Get("transactions")
	if err != nil {
		t.Fatalf("Get() on absent slot: %v", err)
	}
	if ok {
		t.Fatal("Get() on absent slot reported ok=true")
	}

	blob := []byte(`{"id":1}` + "\n")
	if err := store.Set("transactions", blob); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	got, ok, err := store.Get("transactions")
	if err != nil || !ok {
		t.Fatalf("Get() after Set: ok=%t err=%v", ok, err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("Get() = %q, want %q", got, blob)
	}

	// A second Set fully overwrites the previous blob.
	next := []byte(`{"id":2}` + "\n")
	if err := store.Set("transactions", next); err != nil {
		t.Fatalf("Set() overwrite: %v", err)
	}
	got, _, _ = store.Get("transactions")
	if !bytes.Equal(got, next) {
		t.Errorf("Get() after overwrite = %q, want %q", got, next)
	}
}

func TestFileStore_SlotsAreIndependent(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore() unexpected error: %v", err)
	}
	defer store.Close()

	if err := store.Set("a", []byte("first")); err != nil {
		t.Fatalf("Set(a): %v", err)
	}
	if err := store.Set("b", []byte("second")); err != nil {
		t.Fatalf("Set(b): %v", err)
	}
	got, ok, err := store.Get("a")
	if err != nil || !ok || string(got) != "first" {
		t.Errorf("Get(a) = (%q, %t, %v), want (first, true, nil)", got, ok, err)
	}
}
