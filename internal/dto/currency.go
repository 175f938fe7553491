package dto

import (
	"github.com/SscSPs/erp_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Description    string `json:"description"`
	IsBaseCurrency bool   `json:"isBaseCurrency"`
	IsLegalTender  bool   `json:"isLegalTender"`
	Status         string `json:"status"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:           curr.Code,
		Name:           curr.Name,
		Symbol:         curr.Symbol,
		Description:    curr.Description,
		IsBaseCurrency: curr.IsBaseCurrency,
		IsLegalTender:  curr.IsLegalTender,
		Status:         string(curr.Status),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}
