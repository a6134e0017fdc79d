package ui

import "testing"

func TestRowVisible(t *testing.T) {
	tests := []struct {
		query, text string
		want        bool
	}{
		{"", "anything at all", true},
		{"   ", "anything at all", true},
		{"pizza", "Pizza Margherita 45,000", true},
		{"PIZZA", "pizza margherita", true},
		{"  pizza  ", "Pizza Margherita", true},
		{"burger", "Pizza Margherita", false},
		{"45,0", "Pizza Margherita 45,000", true},
		{"علی", "علی رضایی 0912", true},
		{"rez", "Ali Rezaei", true},
	}
	for _, tt := range tests {
		got := RowVisible(tt.query, tt.text)
		if got != tt.want {
			t.Errorf("RowVisible(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
		}
	}
}

func TestFilterTable(t *testing.T) {
	tbl := &Table{
		ID: "menu-table",
		Rows: []Row{
			{Text: "Espresso 25,000"},
			{Text: "Latte 38,000"},
			{Text: "Cheesecake 52,000"},
		},
	}
	FilterTable(tbl, "cake")
	want := []bool{true, true, false}
	for i, r := range tbl.Rows {
		if r.Hidden != want[i] {
			t.Errorf("row %d hidden = %v, want %v", i, r.Hidden, want[i])
		}
	}

	// Clearing the query shows everything again.
	FilterTable(tbl, "")
	for i, r := range tbl.Rows {
		if r.Hidden {
			t.Errorf("row %d still hidden after empty query", i)
		}
	}
}

func TestFilterTableNil(t *testing.T) {
	// Missing table is a silent no-op.
	FilterTable(nil, "anything")
}
