package domain

// CurrencyStatus is the lifecycle flag of a currency.
type CurrencyStatus string

const (
	CurrencyStatusActive   CurrencyStatus = "active"
	CurrencyStatusInactive CurrencyStatus = "inactive"
)

// Currency represents a supported currency in the domain.
// Currencies are static reference data and are never persisted.
type Currency struct {
	Code           string         `json:"code"`   // e.g., "USD"
	Name           string         `json:"name"`   // e.g., "US Dollar"
	Symbol         string         `json:"symbol"` // e.g., "$"
	Description    string         `json:"description"`
	IsBaseCurrency bool           `json:"isBaseCurrency"`
	IsLegalTender  bool           `json:"isLegalTender"`
	Status         CurrencyStatus `json:"status"`
}

// IsActive reports whether the currency can take part in conversions.
func (c Currency) IsActive() bool {
	return c.Status == CurrencyStatusActive
}
