package ui

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var grouped = message.NewPrinter(language.English)

// FormatMoney renders v with digit grouping (1000 -> "1,000").
// Anything that does not convert to an integer comes back unchanged,
// so a bad value degrades to raw display instead of an error.
func FormatMoney(v any) string {
	switch n := v.(type) {
	case int:
		return grouped.Sprintf("%d", n)
	case int64:
		return grouped.Sprintf("%d", n)
	case float64:
		return grouped.Sprintf("%d", int64(n))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return n
		}
		return grouped.Sprintf("%d", i)
	default:
		return fmt.Sprint(v)
	}
}
