package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateScale is the number of fractional digits every rate and converted amount carries.
const RateScale int32 = 10

// ExchangeRate is a persisted directional rate: 1 unit of FromCurrencyCode buys Rate units of ToCurrencyCode.
// A row never implies anything about the reverse pair.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	AuditFields
}

// ResolutionStrategy names how a rate between two currencies was obtained.
type ResolutionStrategy string

const (
	StrategyIdentity   ResolutionStrategy = "identity"
	StrategyDirect     ResolutionStrategy = "direct"
	StrategyHubForward ResolutionStrategy = "hub_forward"
	StrategyHubInverse ResolutionStrategy = "hub_inverse"
	StrategyNone       ResolutionStrategy = "none"
)

// RateHop is one stored rate row used to justify a resolved rate.
type RateHop struct {
	From Currency
	To   Currency
	Rate decimal.Decimal
}

// ResolvedRate is the outcome of rate resolution between two currencies.
type ResolvedRate struct {
	From     Currency
	To       Currency
	Rate     decimal.Decimal
	Strategy ResolutionStrategy
	Path     []RateHop
}

// IsDirect reports whether no computation was involved.
func (r ResolvedRate) IsDirect() bool {
	return r.Strategy == StrategyIdentity || r.Strategy == StrategyDirect
}

// ExchangeResult is the outcome of converting an amount between two currencies.
type ExchangeResult struct {
	FromCurrency Currency
	ToCurrency   Currency
	FromAmount   decimal.Decimal
	ToAmount     decimal.Decimal
	Rate         decimal.Decimal
}

// ExchangeRateUpdatedEvent is emitted after a stored rate changed.
type ExchangeRateUpdatedEvent struct {
	ExchangeRateID   string
	FromCurrencyCode string
	ToCurrencyCode   string
	PreviousRate     decimal.Decimal
	Rate             decimal.Decimal
	UpdatedBy        string
	UpdatedAt        time.Time
}
