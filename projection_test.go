package moneybook

import (
	"slices"
	"testing"
)

func seededLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	l.SetIDSource(SequenceIDs(1))
	l.Add(fields("Paycheck", 500, Salary, Income, "2025-08-01"))   // id 1
	l.Add(fields("Groceries", 80, Food, Expense, "2025-08-15"))    // id 2
	l.Add(fields("Bus pass", 30, Transport, Expense, "2025-08-15")) // id 3
	l.Add(fields("Dividends", 45, Investment, Income, "2025-08-20")) // id 4
	return l
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{in: "all", want: FilterAll},
		{in: "income", want: FilterIncome},
		{in: "expense", want: FilterExpense},
		{in: "", wantErr: true},
		{in: "everything", wantErr: true},
		{in: "Income", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFilter(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseFilter(%q) expected an error, got %q", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilter(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseFilter(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestProject_Filtering(t *testing.T) {
	l := seededLedger(t)

	all, err := Project(l, FilterAll)
	if err != nil {
		t.Fatalf("Project(all) unexpected error: %v", err)
	}
	if len(all) != l.Len() {
		t.Errorf("Project(all) returned %d records, want every one of the %d", len(all), l.Len())
	}

	expenses, err := Project(l, FilterExpense)
	if err != nil {
		t.Fatalf("Project(expense) unexpected error: %v", err)
	}
	for _, tx := range expenses {
		if tx.Type == Income {
			t.Errorf("Project(expense) returned an income record: %+v", tx)
		}
	}
	incomes, err := Project(l, FilterIncome)
	if err != nil {
		t.Fatalf("Project(income) unexpected error: %v", err)
	}
	if len(incomes)+len(expenses) != len(all) {
		t.Errorf("income (%d) + expense (%d) projections do not partition all (%d)",
			len(incomes), len(expenses), len(all))
	}
}

func TestProject_UnknownFilterFailsFast(t *testing.T) {
	l := seededLedger(t)
	if _, err := Project(l, Filter("everything")); err == nil {
		t.Fatal("Project() with an unknown filter must fail, not behave as all")
	}
}

func TestProject_OrderMostRecentFirst(t *testing.T) {
	l := seededLedger(t)

	view, err := Project(l, FilterAll)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}
	wantIDs := []int64{4, 2, 3, 1} // 08-20, then the 08-15 pair by id ascending, then 08-01
	gotIDs := make([]int64, 0, len(view))
	for _, tx := range view {
		gotIDs = append(gotIDs, tx.ID)
	}
	if !slices.Equal(gotIDs, wantIDs) {
		t.Errorf("Project() order = %v, want %v", gotIDs, wantIDs)
	}
}

func TestProject_TieBreakIsStableAcrossCalls(t *testing.T) {
	l := seededLedger(t)

	first, err := Project(l, FilterAll)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}
	for range 10 {
		again, err := Project(l, FilterAll)
		if err != nil {
			t.Fatalf("Project() unexpected error: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("Project() size changed between calls: %d vs %d", len(again), len(first))
		}
		for i := range again {
			if again[i].ID != first[i].ID {
				t.Fatalf("Project() order changed between calls at index %d: %d vs %d",
					i, again[i].ID, first[i].ID)
			}
		}
	}
}

func TestProject_DoesNotMutateLedger(t *testing.T) {
	l := seededLedger(t)
	before := make([]int64, 0, l.Len())
	for tx := range l.Transactions() {
		before = append(before, tx.ID)
	}

	if _, err := Project(l, FilterAll); err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}

	after := make([]int64, 0, l.Len())
	for tx := range l.Transactions() {
		after = append(after, tx.ID)
	}
	if !slices.Equal(before, after) {
		t.Errorf("Project() reordered the ledger: %v -> %v", before, after)
	}
}
