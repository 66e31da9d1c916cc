package service

import (
	"errors"
	"strings"
)

// ErrInvalidCurrencyCode indicates a currency code is not a 3-letter token.
var ErrInvalidCurrencyCode = errors.New("invalid currency code format")

// ErrUnsupportedCurrency is returned when a currency is not in the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrNegativeAmount indicates a negative send amount.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ErrInvalidTransferID indicates the transfer ID format is invalid.
var ErrInvalidTransferID = errors.New("invalid transfer id")

// ErrNotFound indicates the requested resource was not found.
var ErrNotFound = errors.New("not found")

// ErrInternal indicates an internal server error.
var ErrInternal = errors.New("internal error")

// ValidationError reports the first input field that failed transfer validation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Field + ": " + e.Msg
}

// IsValidCurrencyCode checks whether a string is a valid 3-letter currency code.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	code = strings.ToUpper(code)
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func normalizePair(from, to string) (normFrom, normTo string, err error) {
	if !IsValidCurrencyCode(from) || !IsValidCurrencyCode(to) {
		return "", "", ErrInvalidCurrencyCode
	}
	return strings.ToUpper(from), strings.ToUpper(to), nil
}
