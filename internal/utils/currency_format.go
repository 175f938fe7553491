package utils

import (
	"fmt"
	"strings"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatRate renders a rate or amount with exactly domain.RateScale fractional digits.
// Example: 200 returns "200.0000000000"
// Example: 0.90909090909090909 returns "0.9090909091"
func FormatRate(amount decimal.Decimal) string {
	return amount.StringFixed(domain.RateScale)
}

// QuantizeRate rounds a value to domain.RateScale fractional digits.
func QuantizeRate(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(domain.RateScale)
}

// ParsePositiveDecimal parses a strictly positive decimal string.
// The returned error wraps apperrors.ErrValidation.
func ParsePositiveDecimal(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: value must not be empty", apperrors.ErrValidation)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s' is not a number", apperrors.ErrValidation, raw)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: '%s' must be greater than 0", apperrors.ErrValidation, raw)
	}
	return d, nil
}

// NormalizeRate validates a rate string and quantizes it to the stored precision.
func NormalizeRate(raw string) (decimal.Decimal, error) {
	d, err := ParsePositiveDecimal(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("exchange rate: %w", err)
	}
	q := QuantizeRate(d)
	if !q.IsPositive() {
		return decimal.Zero, fmt.Errorf("exchange rate: %w: '%s' rounds to zero at %d decimal places",
			apperrors.ErrValidation, raw, domain.RateScale)
	}
	return q, nil
}
