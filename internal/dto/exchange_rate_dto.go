package dto

import (
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/utils"
)

// UpdateExchangeRateRequest defines the body for updating a stored rate.
type UpdateExchangeRateRequest struct {
	Rate string `json:"rate" binding:"required,positive_decimal" example:"7.25"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
// Rate is always rendered with 10 fractional digits.
type ExchangeRateResponse struct {
	ExchangeRateID   string    `json:"id"`
	FromCurrencyCode string    `json:"fromCurrencyCode"`
	ToCurrencyCode   string    `json:"toCurrencyCode"`
	Rate             string    `json:"rate"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	UpdatedAt        time.Time `json:"updatedAt"`
	UpdatedBy        string    `json:"updatedBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             utils.FormatRate(rate.Rate),
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
		UpdatedAt:        rate.LastUpdatedAt,
		UpdatedBy:        rate.LastUpdatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// RateHopResponse is one stored row on a rate path.
type RateHopResponse struct {
	From CurrencyResponse `json:"from"`
	To   CurrencyResponse `json:"to"`
	Rate string           `json:"rate"`
}

// RatePathResponse describes how a rate was resolved.
type RatePathResponse struct {
	Path      []RateHopResponse `json:"path"`
	TotalRate string            `json:"totalRate"`
	IsDirect  bool              `json:"isDirect"`
	Strategy  string            `json:"strategy"`
}

// ToRatePathResponse converts a domain.ResolvedRate to RatePathResponse DTO
func ToRatePathResponse(r *domain.ResolvedRate) RatePathResponse {
	path := make([]RateHopResponse, len(r.Path))
	for i, hop := range r.Path {
		path[i] = RateHopResponse{
			From: ToCurrencyResponse(hop.From),
			To:   ToCurrencyResponse(hop.To),
			Rate: utils.FormatRate(hop.Rate),
		}
	}
	return RatePathResponse{
		Path:      path,
		TotalRate: utils.FormatRate(r.Rate),
		IsDirect:  r.IsDirect(),
		Strategy:  string(r.Strategy),
	}
}

// ExchangeResponse is the result of converting an amount.
type ExchangeResponse struct {
	FromCurrency CurrencyResponse `json:"fromCurrency"`
	ToCurrency   CurrencyResponse `json:"toCurrency"`
	FromAmount   string           `json:"fromAmount"`
	ToAmount     string           `json:"toAmount"`
	Rate         string           `json:"rate"`
}

// ToExchangeResponse converts a domain.ExchangeResult to ExchangeResponse DTO
func ToExchangeResponse(r *domain.ExchangeResult) ExchangeResponse {
	return ExchangeResponse{
		FromCurrency: ToCurrencyResponse(r.FromCurrency),
		ToCurrency:   ToCurrencyResponse(r.ToCurrency),
		FromAmount:   utils.FormatRate(r.FromAmount),
		ToAmount:     utils.FormatRate(r.ToAmount),
		Rate:         utils.FormatRate(r.Rate),
	}
}
