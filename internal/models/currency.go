package models

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is a supported currency code.
type Currency string

// Supported currency codes
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
)

// ErrUnsupportedCurrency is returned when a code is outside the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

var currencies = []Currency{USD, EUR, GBP, JPY}

// Currencies returns the supported currency codes in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// Valid reports whether c is one of the supported codes.
func (c Currency) Valid() bool {
	for _, cur := range currencies {
		if c == cur {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency converts a user supplied code into a Currency.
// Codes are matched case-insensitively.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return c, nil
}
