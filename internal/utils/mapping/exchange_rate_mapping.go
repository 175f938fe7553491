package mapping

import (
	"fmt"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   d.ExchangeRateID,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		Rate:             utils.FormatRate(d.Rate),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) (domain.ExchangeRate, error) {
	rate, err := decimal.NewFromString(m.Rate)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("invalid stored rate '%s' for exchange rate %s: %w", m.Rate, m.ExchangeRateID, err)
	}
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             rate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates.
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) ([]domain.ExchangeRate, error) {
	out := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		d, err := ToDomainExchangeRate(m)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
