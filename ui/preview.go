package ui

import (
	"strconv"
	"strings"
)

// Placeholder shown when there is nothing to total yet.
const Placeholder = "—"

// PreviewCalculator mirrors the order form's live total. Inputs are raw
// attribute strings straight off the form contract, so parsing never
// errors out: a missing or bad price falls back to 0, quantity to 1.
type PreviewCalculator struct {
	Suffix string // currency suffix appended to the formatted total
}

func (p PreviewCalculator) Total(priceAttr, qtyAttr string) int64 {
	price, err := strconv.ParseInt(strings.TrimSpace(priceAttr), 10, 64)
	if err != nil {
		price = 0
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(qtyAttr), 10, 64)
	if err != nil {
		qty = 1
	}
	return price * qty
}

// Render formats the total for the preview field, or returns the
// placeholder when the total is zero.
func (p PreviewCalculator) Render(priceAttr, qtyAttr string) string {
	total := p.Total(priceAttr, qtyAttr)
	if total == 0 {
		return Placeholder
	}
	out := FormatMoney(total)
	if p.Suffix != "" {
		out += " " + p.Suffix
	}
	return out
}
