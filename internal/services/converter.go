package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Convert multiplies amount by the rate of target and formats the result
// with exactly two decimal places, rounding half away from zero.
//
// The amount is validated before the rate table is looked at, so a bad amount
// always yields ErrInvalidInput.
func Convert(amount string, rates models.RateTable, target models.Currency) (string, error) {
	value, err := parseAmount(amount)
	if err != nil {
		return "", err
	}

	if rates == nil {
		return "", ErrRatesUnavailable
	}

	rate, ok := rates[target]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCurrency, target)
	}

	return value.Mul(decimal.NewFromFloat(rate)).StringFixed(2), nil
}

// parseAmount accepts amounts that are finite float64 values. Literals that
// overflow or underflow float64 are rejected, which also keeps decimal
// exponents within the float64 range.
func parseAmount(amount string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return decimal.Zero, ErrInvalidInput
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidInput, amount)
	}

	// ParseFloat also takes hex floats and "inf"; the decimal parser does not.
	exact, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidInput, amount)
	}
	if f == 0 && !exact.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %q underflows", ErrInvalidInput, amount)
	}

	return decimal.NewFromFloat(f), nil
}
