package ui

import "strings"

// RowVisible reports whether a table row with the given rendered text
// stays visible under query. Matching is a case-insensitive substring
// check on the trimmed query; an empty query keeps every row.
func RowVisible(query, text string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), q)
}

type Row struct {
	Text   string
	Hidden bool
}

type Table struct {
	ID   string
	Rows []Row
}

// FilterTable hides every row whose text does not match query. Row
// visibility is the only thing touched; a nil table is a no-op.
func FilterTable(t *Table, query string) {
	if t == nil {
		return
	}
	for i := range t.Rows {
		t.Rows[i].Hidden = !RowVisible(query, t.Rows[i].Text)
	}
}
