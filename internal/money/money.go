package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// ParseMinor converts a decimal amount string ("5000" or "5000.50") into
// minor units (paise).
func ParseMinor(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if value.Exponent() < -2 {
		return 0, ErrTooManyDecimals
	}
	return value.Shift(2).IntPart(), nil
}

// FormatMinor renders minor units as a two-decimal amount string.
func FormatMinor(value int64) string {
	return decimal.NewFromInt(value).Shift(-2).StringFixed(2)
}

// Fraction returns the given fraction of a minor-unit amount, bank-rounded
// to whole minor units.
func Fraction(amountMinor int64, fraction decimal.Decimal) int64 {
	return decimal.NewFromInt(amountMinor).Mul(fraction).RoundBank(0).IntPart()
}
