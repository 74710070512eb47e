package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMinor(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"5000", 500000},
		{"5000.50", 500050},
		{"0.01", 1},
		{" 100 ", 10000},
		{"10000.00", 1000000},
	}
	for _, tc := range cases {
		got, err := ParseMinor(tc.input)
		if err != nil {
			t.Fatalf("ParseMinor(%q): unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMinor(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseMinorInvalid(t *testing.T) {
	cases := []struct {
		input   string
		wantErr error
	}{
		{"", ErrInvalidAmount},
		{"abc", ErrInvalidAmount},
		{"10.", ErrInvalidAmount},
		{"10.123", ErrTooManyDecimals},
	}
	for _, tc := range cases {
		_, err := ParseMinor(tc.input)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("ParseMinor(%q): expected %v, got %v", tc.input, tc.wantErr, err)
		}
	}
}

func TestFormatMinor(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{1000000, "10000.00"},
		{500050, "5000.50"},
		{1, "0.01"},
		{0, "0.00"},
		{-250000, "-2500.00"},
	}
	for _, tc := range cases {
		if got := FormatMinor(tc.input); got != tc.want {
			t.Fatalf("FormatMinor(%d) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestFractionRefund(t *testing.T) {
	refund := decimal.RequireFromString("0.8")
	cases := []struct {
		amount int64
		want   int64
	}{
		{1000000, 800000},
		{500000, 400000},
		{1, 1},   // 0.8 rounds to 1
		{3, 2},   // 2.4 rounds down
		{5, 4},   // 4.0 exactly
		{0, 0},
	}
	for _, tc := range cases {
		if got := Fraction(tc.amount, refund); got != tc.want {
			t.Fatalf("Fraction(%d, 0.8) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
