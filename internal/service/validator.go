package service

import (
	"strings"

	"remitsvc/internal/rates"
)

// Validator defines the interface for currency validation.
type Validator interface {
	Validate(code string) error
	IsSupported(code string) bool
}

// The supported currency set is closed to the currencies present in the
// reference table, so validation and fallback data cannot drift.
type validator struct {
	ref *rates.ReferenceTable
}

// NewValidator creates a currency validator backed by the reference table.
func NewValidator(ref *rates.ReferenceTable) Validator {
	return &validator{ref: ref}
}

// Validate checks format first, then membership (case-insensitive).
func (v *validator) Validate(code string) error {
	if !IsValidCurrencyCode(code) {
		return ErrInvalidCurrencyCode
	}
	if !v.IsSupported(code) {
		return ErrUnsupportedCurrency
	}
	return nil
}

// IsSupported returns true if the currency code is supported (case-insensitive).
func (v *validator) IsSupported(code string) bool {
	return v.ref.IsSupported(strings.ToUpper(code))
}
