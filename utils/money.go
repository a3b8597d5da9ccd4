package utils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(1 << 53)
)

// ParsePrice converts a submitted currency string such as "3.75" or "$12"
// into integer cents. Negative amounts and fractions of a cent are rejected.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return 0, ErrInvalidPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	cents := d.Mul(hundred)
	if cents.IsNegative() || !cents.IsInteger() || cents.GreaterThan(maxCents) {
		return 0, ErrInvalidPrice
	}
	return cents.IntPart(), nil
}

// FormatPrice renders cents as a two-decimal string.
func FormatPrice(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
