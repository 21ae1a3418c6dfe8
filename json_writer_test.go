package moneybook

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("id", int64(42))
	w.Append("description", "Groceries")
	w.Optional("memo", "")

	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	want := `{"id":42,"description":"Groceries"}`
	if string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}

func TestJSONObjectWriter_Embed(t *testing.T) {
	var inner jsonObjectWriter
	inner.Append("a", 1)
	innerBytes, err := inner.MarshalJSON()
	if err != nil {
		t.Fatalf("inner MarshalJSON() unexpected error: %v", err)
	}

	var w jsonObjectWriter
	w.Embed(innerBytes)
	w.Append("b", 2)

	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	want := `{"a":1,"b":2}`
	if string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}

func TestJSONObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("MarshalJSON() on empty writer = %s, want {}", data)
	}
}
