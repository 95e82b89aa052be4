// internal/pkg/currency/format.go
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Format renders an amount in rupiah (smallest unit, no decimals) as a
// display string with Indonesian digit grouping, e.g. 75000 -> "Rp 75.000".
// The cart and catalog cores only ever deal in integers; this is the one
// place amounts become strings.
func Format(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}
