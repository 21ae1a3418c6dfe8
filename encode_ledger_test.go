package moneybook

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := NewLedger()
	l.SetIDSource(SequenceIDs(1))
	l.Add(fields("Paycheck", 500, Salary, Income, "2025-08-01"))
	l.Add(fields("Groceries and snacks", 62.5, Food, Expense, "2025-08-15"))
	l.Add(fields("Bus pass", 30, Transport, Expense, "2025-08-15"))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() unexpected error: %v", err)
	}

	back, err := DecodeLedger(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	if back.Len() != l.Len() {
		t.Fatalf("round trip changed ledger size: got %d, want %d", back.Len(), l.Len())
	}
	for tx := range l.Transactions() {
		got, ok := back.Find(tx.ID)
		if !ok {
			t.Fatalf("round trip lost transaction %d", tx.ID)
		}
		if !got.Equal(tx) {
			t.Errorf("round trip changed transaction %d: got %+v, want %+v", tx.ID, got, tx)
		}
	}

	// Encoding the decoded ledger reproduces the exact same bytes.
	var again bytes.Buffer
	if err := EncodeLedger(&again, back); err != nil {
		t.Fatalf("EncodeLedger() on decoded ledger: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Errorf("encode/decode/encode is not the identity:\nfirst:  %s\nsecond: %s", buf.String(), again.String())
	}
}

func TestEncodeLedger_CanonicalOrder(t *testing.T) {
	l := NewLedger()
	l.SetIDSource(SequenceIDs(10))
	// Inserted out of date order on purpose.
	l.Add(fields("late", 10, Other, Expense, "2025-08-20"))  // id 10
	l.Add(fields("early", 20, Other, Expense, "2025-08-01")) // id 11
	l.Add(fields("same day", 30, Other, Expense, "2025-08-20")) // id 12

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("EncodeLedger() wrote %d lines, want 3", len(lines))
	}
	// Date ascending, then id ascending: early(11), late(10), same day(12).
	if !strings.Contains(lines[0], `"id":11`) {
		t.Errorf("first line should be the earliest date, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `"id":10`) || !strings.Contains(lines[2], `"id":12`) {
		t.Errorf("same-day records should be ordered by id: got\n%s\n%s", lines[1], lines[2])
	}
}

func TestEncodeTransaction_StableFieldOrder(t *testing.T) {
	l := NewLedger()
	l.SetIDSource(SequenceIDs(7))
	tx, _ := l.Add(fields("Groceries", 62.5, Food, Expense, "2025-08-15"))

	var buf bytes.Buffer
	if err := EncodeTransaction(&buf, tx); err != nil {
		t.Fatalf("EncodeTransaction() unexpected error: %v", err)
	}
	want := `{"id":7,"description":"Groceries","amount":62.5,"category":"food","type":"expense","date":"2025-08-15"}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeTransaction() = %s, want %s", buf.String(), want)
	}
}

func TestDecodeLedger_EmptyStream(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeLedger() on empty stream: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("DecodeLedger() on empty stream: size = %d, want 0", l.Len())
	}
}

func TestDecodeLedger_Corrupt(t *testing.T) {
	valid := `{"id":1,"description":"ok","amount":10,"category":"food","type":"expense","date":"2025-08-01"}`

	tests := []struct {
		name     string
		stream   string
		wantLine int
	}{
		{
			name:     "not json",
			stream:   valid + "\n" + "this is not json",
			wantLine: 2,
		},
		{
			name:     "unknown category",
			stream:   `{"id":1,"description":"x","amount":10,"category":"crypto","type":"expense","date":"2025-08-01"}`,
			wantLine: 1,
		},
		{
			name:     "unknown type",
			stream:   `{"id":1,"description":"x","amount":10,"category":"food","type":"transfer","date":"2025-08-01"}`,
			wantLine: 1,
		},
		{
			name:     "zero amount",
			stream:   `{"id":1,"description":"x","amount":0,"category":"food","type":"expense","date":"2025-08-01"}`,
			wantLine: 1,
		},
		{
			name:     "negative amount",
			stream:   `{"id":1,"description":"x","amount":-5,"category":"food","type":"expense","date":"2025-08-01"}`,
			wantLine: 1,
		},
		{
			name:     "empty description",
			stream:   `{"id":1,"description":"","amount":10,"category":"food","type":"expense","date":"2025-08-01"}`,
			wantLine: 1,
		},
		{
			name:     "bad date",
			stream:   `{"id":1,"description":"x","amount":10,"category":"food","type":"expense","date":"someday"}`,
			wantLine: 1,
		},
		{
			name:     "duplicate id",
			stream:   valid + "\n" + valid,
			wantLine: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.stream))
			var corrupt *CorruptError
			if !errors.As(err, &corrupt) {
				t.Fatalf("DecodeLedger() = %v, want *CorruptError", err)
			}
			if corrupt.Line != tc.wantLine {
				t.Errorf("CorruptError line = %d, want %d", corrupt.Line, tc.wantLine)
			}
		})
	}
}
