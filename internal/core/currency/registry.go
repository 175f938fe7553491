// Package currency holds the static table of supported currencies.
package currency

import (
	"fmt"
	"strings"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
)

const (
	// BaseCurrencyCode is the hub for indirect rate computation.
	BaseCurrencyCode = "USD"
	// LegalTenderCurrencyCode is the official tender of the deployment.
	LegalTenderCurrencyCode = "VES"
)

// DefaultCurrencies is the fixed currency table, in declaration order.
var DefaultCurrencies = []domain.Currency{
	{
		Code:           "USD",
		Name:           "US Dollar",
		Symbol:         "$",
		Description:    "Legal tender of the United States, system base currency",
		IsBaseCurrency: true,
		Status:         domain.CurrencyStatusActive,
	},
	{
		Code:          "VES",
		Name:          "Bolivar",
		Symbol:        "Bs",
		Description:   "Legal tender of Venezuela",
		IsLegalTender: true,
		Status:        domain.CurrencyStatusActive,
	},
	{
		Code:        "EUR",
		Name:        "Euro",
		Symbol:      "€",
		Description: "Legal tender of the euro area",
		Status:      domain.CurrencyStatusActive,
	},
	{
		Code:        "CNY",
		Name:        "Renminbi",
		Symbol:      "¥",
		Description: "Legal tender of the People's Republic of China",
		Status:      domain.CurrencyStatusActive,
	},
	{
		Code:        "PLACEHOLDER",
		Name:        "Placeholder",
		Symbol:      "PH",
		Description: "System placeholder currency for special cases",
		Status:      domain.CurrencyStatusActive,
	},
}

// Registry is an immutable, case-insensitive lookup over a currency table.
type Registry struct {
	currencies []domain.Currency
	byCode     map[string]int
	baseIdx    int
	legalIdx   int
}

// NewRegistry builds a Registry. The table must contain unique codes, exactly one
// base currency and exactly one legal-tender currency.
func NewRegistry(currencies []domain.Currency) (*Registry, error) {
	r := &Registry{
		currencies: make([]domain.Currency, len(currencies)),
		byCode:     make(map[string]int, len(currencies)),
		baseIdx:    -1,
		legalIdx:   -1,
	}
	for i, c := range currencies {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if code == "" {
			return nil, fmt.Errorf("%w: currency at position %d has an empty code", apperrors.ErrValidation, i)
		}
		if _, dup := r.byCode[code]; dup {
			return nil, fmt.Errorf("%w: currency code '%s' declared twice", apperrors.ErrDuplicate, code)
		}
		c.Code = code
		if c.IsBaseCurrency {
			if r.baseIdx >= 0 {
				return nil, fmt.Errorf("%w: more than one base currency", apperrors.ErrValidation)
			}
			r.baseIdx = i
		}
		if c.IsLegalTender {
			if r.legalIdx >= 0 {
				return nil, fmt.Errorf("%w: more than one legal tender currency", apperrors.ErrValidation)
			}
			r.legalIdx = i
		}
		r.currencies[i] = c
		r.byCode[code] = i
	}
	if r.baseIdx < 0 {
		return nil, fmt.Errorf("%w: no base currency declared", apperrors.ErrValidation)
	}
	if r.legalIdx < 0 {
		return nil, fmt.Errorf("%w: no legal tender currency declared", apperrors.ErrValidation)
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on an invalid table.
func MustNewRegistry(currencies []domain.Currency) *Registry {
	r, err := NewRegistry(currencies)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns a Registry over DefaultCurrencies.
func DefaultRegistry() *Registry {
	return MustNewRegistry(DefaultCurrencies)
}

// ListAll returns every currency in declaration order.
func (r *Registry) ListAll() []domain.Currency {
	out := make([]domain.Currency, len(r.currencies))
	copy(out, r.currencies)
	return out
}

// ListActive returns the active currencies in declaration order.
func (r *Registry) ListActive() []domain.Currency {
	out := make([]domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

// GetByCode looks a currency up ignoring case.
func (r *Registry) GetByCode(code string) (domain.Currency, error) {
	idx, ok := r.byCode[strings.ToUpper(code)]
	if !ok {
		return domain.Currency{}, apperrors.NewInvalidCurrencyCodeError(code)
	}
	return r.currencies[idx], nil
}

// IsValid reports whether code names a known currency, ignoring case.
func (r *Registry) IsValid(code string) bool {
	_, ok := r.byCode[strings.ToUpper(code)]
	return ok
}

// Base returns the hub currency.
func (r *Registry) Base() domain.Currency {
	return r.currencies[r.baseIdx]
}

// LegalTender returns the legal-tender currency.
func (r *Registry) LegalTender() domain.Currency {
	return r.currencies[r.legalIdx]
}
