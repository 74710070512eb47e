package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidAirportCode = errors.New("airport code must be exactly 3 letters")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)

var (
	emailRegex       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 60 {
		return ErrInvalidName
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrInvalidPassword
	}
	return nil
}

// NormalizeAirportCode uppercases and validates a 3-letter IATA-style code.
func NormalizeAirportCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !airportCodeRegex.MatchString(normalized) {
		return "", ErrInvalidAirportCode
	}
	return normalized, nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
