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
	"github.com/SscSPs/erp_backend/internal/platform/metrics"
	"github.com/SscSPs/erp_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// rateResolver resolves rates from stored rows, directly or through the base currency.
type rateResolver struct {
	BaseService
	registry *currency.Registry
	rateRepo portsrepo.ExchangeRateReader
	metrics  *metrics.Metrics
}

// NewRateResolver creates a rate resolver. m may be nil.
func NewRateResolver(registry *currency.Registry, rateRepo portsrepo.ExchangeRateReader, m *metrics.Metrics) portssvc.RateResolverSvc {
	return &rateResolver{
		registry: registry,
		rateRepo: rateRepo,
		metrics:  m,
	}
}

// lookup returns the stored pair, nil when absent, or a store error.
func (r *rateResolver) lookup(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	rate, err := r.rateRepo.FindDirect(ctx, fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up rate %s -> %s: %w", fromCode, toCode, err)
	}
	return rate, nil
}

func (r *rateResolver) hop(from, to domain.Currency, row *domain.ExchangeRate) domain.RateHop {
	return domain.RateHop{From: from, To: to, Rate: row.Rate}
}

// ResolveRate validates both codes, then tries identity, the direct row, the hub-forward
// pair and finally the hub-inverse pair.
func (r *rateResolver) ResolveRate(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, error) {
	from, err := r.registry.GetByCode(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := r.registry.GetByCode(toCode)
	if err != nil {
		return nil, err
	}

	resolved, err := r.resolve(ctx, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoRatePath) {
			r.metrics.RecordResolution(string(domain.StrategyNone))
		}
		return nil, err
	}
	r.metrics.RecordResolution(string(resolved.Strategy))
	r.LogDebug(ctx, "Resolved exchange rate",
		slog.String("from", from.Code),
		slog.String("to", to.Code),
		slog.String("strategy", string(resolved.Strategy)),
		slog.String("rate", utils.FormatRate(resolved.Rate)))
	return resolved, nil
}

func (r *rateResolver) resolve(ctx context.Context, from, to domain.Currency) (*domain.ResolvedRate, error) {
	result := &domain.ResolvedRate{From: from, To: to, Path: []domain.RateHop{}}

	if from.Code == to.Code {
		result.Rate = decimal.NewFromInt(1)
		result.Strategy = domain.StrategyIdentity
		return result, nil
	}

	direct, err := r.lookup(ctx, from.Code, to.Code)
	if err != nil {
		return nil, err
	}
	if direct != nil {
		result.Rate = direct.Rate
		result.Strategy = domain.StrategyDirect
		result.Path = []domain.RateHop{r.hop(from, to, direct)}
		return result, nil
	}

	hub := r.registry.Base()

	// from -> hub -> to
	fromToHub, err := r.lookup(ctx, from.Code, hub.Code)
	if err != nil {
		return nil, err
	}
	if fromToHub != nil {
		hubToTo, err := r.lookup(ctx, hub.Code, to.Code)
		if err != nil {
			return nil, err
		}
		if hubToTo != nil {
			result.Rate = utils.QuantizeRate(fromToHub.Rate.Mul(hubToTo.Rate))
			result.Strategy = domain.StrategyHubForward
			result.Path = []domain.RateHop{r.hop(from, hub, fromToHub), r.hop(hub, to, hubToTo)}
			return result, nil
		}
	}

	// to -> hub -> from, inverted
	toToHub, err := r.lookup(ctx, to.Code, hub.Code)
	if err != nil {
		return nil, err
	}
	if toToHub != nil {
		hubToFrom, err := r.lookup(ctx, hub.Code, from.Code)
		if err != nil {
			return nil, err
		}
		if hubToFrom != nil {
			product := toToHub.Rate.Mul(hubToFrom.Rate)
			result.Rate = decimal.NewFromInt(1).DivRound(product, domain.RateScale)
			result.Strategy = domain.StrategyHubInverse
			result.Path = []domain.RateHop{r.hop(to, hub, toToHub), r.hop(hub, from, hubToFrom)}
			return result, nil
		}
	}

	return nil, apperrors.NewNoRatePathError(from.Code, to.Code)
}

// CalculateRate returns the resolved rate as a string with 10 fractional digits.
func (r *rateResolver) CalculateRate(ctx context.Context, fromCode, toCode string) (string, error) {
	resolved, err := r.ResolveRate(ctx, fromCode, toCode)
	if err != nil {
		return "", err
	}
	return utils.FormatRate(resolved.Rate), nil
}
