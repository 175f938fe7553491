package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/currency"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CurrencyService exposes the currency registry, rate resolution and amount conversion.
type CurrencyService struct {
	BaseService
	registry *currency.Registry
	resolver portssvc.RateResolverSvc
	rateRepo portsrepo.ExchangeRateReader
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(registry *currency.Registry, resolver portssvc.RateResolverSvc, rateRepo portsrepo.ExchangeRateReader) *CurrencyService {
	return &CurrencyService{
		registry: registry,
		resolver: resolver,
		rateRepo: rateRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// ListCurrencies returns every supported currency.
func (s *CurrencyService) ListCurrencies() []domain.Currency {
	return s.registry.ListAll()
}

// ListActiveCurrencies returns the active currencies.
func (s *CurrencyService) ListActiveCurrencies() []domain.Currency {
	return s.registry.ListActive()
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *CurrencyService) GetCurrencyByCode(code string) (domain.Currency, error) {
	return s.registry.GetByCode(code)
}

func (s *CurrencyService) GetBaseCurrency() domain.Currency {
	return s.registry.Base()
}

func (s *CurrencyService) GetLegalTenderCurrency() domain.Currency {
	return s.registry.LegalTender()
}

func (s *CurrencyService) ResolveRate(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, error) {
	return s.resolver.ResolveRate(ctx, fromCode, toCode)
}

func (s *CurrencyService) CalculateRate(ctx context.Context, fromCode, toCode string) (string, error) {
	return s.resolver.CalculateRate(ctx, fromCode, toCode)
}

// Exchange converts amount of fromCode into toCode.
// Codes, currency status and the amount are all checked before any rate is read.
func (s *CurrencyService) Exchange(ctx context.Context, fromCode, toCode, amount string) (*domain.ExchangeResult, error) {
	from, err := s.registry.GetByCode(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := s.registry.GetByCode(toCode)
	if err != nil {
		return nil, err
	}

	if !from.IsActive() || !to.IsActive() {
		return nil, fmt.Errorf("%w: %w: only active currencies can be exchanged", apperrors.ErrValidation, apperrors.ErrInactiveCurrency)
	}

	fromAmount, err := utils.ParsePositiveDecimal(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: exchange amount: %w", apperrors.ErrInvalidAmount, err)
	}

	resolved, err := s.resolver.ResolveRate(ctx, from.Code, to.Code)
	if err != nil {
		return nil, err
	}

	result := &domain.ExchangeResult{
		FromCurrency: from,
		ToCurrency:   to,
		FromAmount:   utils.QuantizeRate(fromAmount),
		ToAmount:     utils.QuantizeRate(fromAmount.Mul(resolved.Rate)),
		Rate:         resolved.Rate,
	}
	s.LogInfo(ctx, "Currency exchanged",
		slog.String("from", from.Code),
		slog.String("to", to.Code),
		slog.String("amount", utils.FormatRate(result.FromAmount)),
		slog.String("strategy", string(resolved.Strategy)))
	return result, nil
}

// BaseToLegalLatestRate returns the stored base -> legal tender rate.
func (s *CurrencyService) BaseToLegalLatestRate(ctx context.Context) (decimal.Decimal, error) {
	base := s.registry.Base()
	legal := s.registry.LegalTender()

	rate, err := s.rateRepo.FindDirect(ctx, base.Code, legal.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no exchange rate from %s to %s", apperrors.ErrNotFound, base.Code, legal.Code)
		}
		s.LogError(ctx, err, "Failed to read base to legal tender rate")
		return decimal.Zero, fmt.Errorf("failed to read base to legal tender rate: %w", err)
	}
	return rate.Rate, nil
}
