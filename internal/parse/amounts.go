package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var amountJunk = regexp.MustCompile(`[^0-9.,]`)

// ParseAmount parses a numeric token tolerant of thousands/decimal
// separator ambiguity. Everything but digits, commas and periods is
// stripped; when both separators are present the comma is a thousands
// separator, when only a comma is present it is the decimal point.
// Returns false when the cleaned token is not a valid non-negative number.
//
// A value of exactly zero parses successfully here; callers reject it
// (zero-amount payments cannot be recorded).
func ParseAmount(token string) (decimal.Decimal, bool) {
	cleaned := amountJunk.ReplaceAllString(strings.TrimSpace(token), "")

	switch {
	case strings.Contains(cleaned, ",") && strings.Contains(cleaned, "."):
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}
