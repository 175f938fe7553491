package services

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines lookups over the static currency registry.
type CurrencyReaderSvc interface {
	ListCurrencies() []domain.Currency
	ListActiveCurrencies() []domain.Currency
	// GetCurrencyByCode looks a currency up ignoring case.
	GetCurrencyByCode(code string) (domain.Currency, error)
	GetBaseCurrency() domain.Currency
	GetLegalTenderCurrency() domain.Currency
}

// RateResolverSvc resolves a rate between any two supported currencies.
type RateResolverSvc interface {
	// ResolveRate returns the best available rate together with the rows that justify it.
	ResolveRate(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, error)

	// CalculateRate returns only the resolved rate, formatted with 10 fractional digits.
	CalculateRate(ctx context.Context, fromCode, toCode string) (string, error)
}

// CurrencyExchangeSvc converts amounts between currencies.
type CurrencyExchangeSvc interface {
	// Exchange converts amount from one currency to another without persisting anything.
	Exchange(ctx context.Context, fromCode, toCode, amount string) (*domain.ExchangeResult, error)

	// BaseToLegalLatestRate returns the stored base -> legal tender rate.
	BaseToLegalLatestRate(ctx context.Context) (decimal.Decimal, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	RateResolverSvc
	CurrencyExchangeSvc
}

// ExchangeRateReaderSvc defines read operations for stored exchange rates
type ExchangeRateReaderSvc interface {
	// FindAllCurrent lists every stored rate ordered by currency pair.
	FindAllCurrent(ctx context.Context) ([]domain.ExchangeRate, error)

	// FindCurrentRate returns the stored rate for an exact pair.
	FindCurrentRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// FindCurrentRateByCurrency returns the stored base -> code rate.
	FindCurrentRateByCurrency(ctx context.Context, code string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for stored exchange rates
type ExchangeRateWriterSvc interface {
	// UpdateByCurrencyPair updates the rate of an existing pair in place.
	UpdateByCurrencyPair(ctx context.Context, fromCode, toCode string, req dto.UpdateExchangeRateRequest, actorUserID string) (*domain.ExchangeRate, error)

	// UpdateByCurrency updates the base -> code rate in place.
	UpdateByCurrency(ctx context.Context, code string, req dto.UpdateExchangeRateRequest, actorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// CurrencyInitializerSvc seeds the initial exchange rates once.
type CurrencyInitializerSvc interface {
	Run(ctx context.Context) error
}
