package ui

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1000, "1,000"},
		{int64(45000), "45,000"},
		{0, "0"},
		{-2500, "-2,500"},
		{"1000000", "1,000,000"},
		{" 7500 ", "7,500"},
		{"abc", "abc"},
		{"", ""},
		{"12.5x", "12.5x"},
		{float64(20000), "20,000"},
	}
	for _, tt := range tests {
		got := FormatMoney(tt.in)
		if got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
