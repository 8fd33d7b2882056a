package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary amount from free-form input. Malformed or
// empty input yields zero rather than an error; aggregation treats such
// values as contributing nothing.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	// Strip thousands separators that show up in imported data.
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
