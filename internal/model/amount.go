package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts keep to a fixed window so arithmetic over a whole log stays cheap
// and the saved payload stays small.
const (
	MinAmountExponent = -8
	MaxAmountExponent = 12
	MaxAmountDigits   = 18
)

// ErrAmountRange reports an amount outside the supported magnitude or precision.
var ErrAmountRange = errors.New("amount out of range")

// ParseAmount parses user-entered money text and rejects values outside the
// supported window.
func ParseAmount(text string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", text)
	}
	if !AmountInRange(v) {
		return decimal.Zero, ErrAmountRange
	}
	return v, nil
}

// AmountInRange reports whether v fits the exponent and digit bounds.
func AmountInRange(v decimal.Decimal) bool {
	if v.IsZero() {
		return true
	}
	exp := v.Exponent()
	if exp < MinAmountExponent || exp > MaxAmountExponent {
		return false
	}
	return v.NumDigits() <= MaxAmountDigits
}
