package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/currency"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/core/ports/events"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/platform/metrics"
	"github.com/SscSPs/erp_backend/internal/utils"
)

// ExchangeRateService provides business logic for stored exchange rates.
type ExchangeRateService struct {
	BaseService
	registry  *currency.Registry
	rateRepo  portsrepo.ExchangeRateRepositoryFacade
	publisher events.RateEventPublisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*ExchangeRateService)

// WithRateEventPublisher announces successful updates through publisher.
func WithRateEventPublisher(publisher events.RateEventPublisher) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.publisher = publisher
	}
}

// WithExchangeRateMetrics counts updates on m.
func WithExchangeRateMetrics(m *metrics.Metrics) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.metrics = m
	}
}

// WithClock overrides the time source used for audit columns.
func WithClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(registry *currency.Registry, rateRepo portsrepo.ExchangeRateRepositoryFacade, options ...ExchangeRateServiceOption) *ExchangeRateService {
	svc := &ExchangeRateService{
		registry: registry,
		rateRepo: rateRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// FindAllCurrent lists every stored rate.
func (s *ExchangeRateService) FindAllCurrent(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// FindCurrentRate returns the stored row for an exact pair.
func (s *ExchangeRateService) FindCurrentRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	from, err := s.registry.GetByCode(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := s.registry.GetByCode(toCode)
	if err != nil {
		return nil, err
	}
	return s.rateRepo.FindDirect(ctx, from.Code, to.Code)
}

// FindCurrentRateByCurrency returns the stored base -> code row.
func (s *ExchangeRateService) FindCurrentRateByCurrency(ctx context.Context, code string) (*domain.ExchangeRate, error) {
	return s.FindCurrentRate(ctx, s.registry.Base().Code, code)
}

// UpdateByCurrencyPair changes the rate of an existing pair in place.
// Concurrent updates of the same pair are last-writer-wins.
func (s *ExchangeRateService) UpdateByCurrencyPair(ctx context.Context, fromCode, toCode string, req dto.UpdateExchangeRateRequest, actorUserID string) (*domain.ExchangeRate, error) {
	from, err := s.registry.GetByCode(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := s.registry.GetByCode(toCode)
	if err != nil {
		return nil, err
	}
	if actorUserID == "" {
		return nil, apperrors.NewValidationError("actor user id is required")
	}
	newRate, err := utils.NormalizeRate(req.Rate)
	if err != nil {
		return nil, err
	}

	existing, err := s.rateRepo.FindDirect(ctx, from.Code, to.Code)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now()
	if err := s.rateRepo.UpdateRate(ctx, existing.ExchangeRateID, newRate, actorUserID, updatedAt); err != nil {
		s.LogError(ctx, err, "Failed to update exchange rate",
			slog.String("exchange_rate_id", existing.ExchangeRateID))
		return nil, fmt.Errorf("failed to update exchange rate %s: %w", existing.ExchangeRateID, err)
	}

	updated, err := s.rateRepo.FindByID(ctx, existing.ExchangeRateID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload exchange rate %s: %w", existing.ExchangeRateID, err)
	}

	s.LogInfo(ctx, "Exchange rate updated",
		slog.String("exchange_rate_id", updated.ExchangeRateID),
		slog.String("from", updated.FromCurrencyCode),
		slog.String("to", updated.ToCurrencyCode),
		slog.String("previous_rate", utils.FormatRate(existing.Rate)),
		slog.String("rate", utils.FormatRate(updated.Rate)),
		slog.String("updated_by", actorUserID))
	s.metrics.RecordRateUpdate(updated.FromCurrencyCode, updated.ToCurrencyCode)
	s.publishUpdated(ctx, existing, updated)

	return updated, nil
}

// UpdateByCurrency changes the base -> code rate in place.
func (s *ExchangeRateService) UpdateByCurrency(ctx context.Context, code string, req dto.UpdateExchangeRateRequest, actorUserID string) (*domain.ExchangeRate, error) {
	return s.UpdateByCurrencyPair(ctx, s.registry.Base().Code, code, req, actorUserID)
}

// publishUpdated is best effort; the update already succeeded.
func (s *ExchangeRateService) publishUpdated(ctx context.Context, previous, updated *domain.ExchangeRate) {
	if s.publisher == nil {
		return
	}
	event := domain.ExchangeRateUpdatedEvent{
		ExchangeRateID:   updated.ExchangeRateID,
		FromCurrencyCode: updated.FromCurrencyCode,
		ToCurrencyCode:   updated.ToCurrencyCode,
		PreviousRate:     previous.Rate,
		Rate:             updated.Rate,
		UpdatedBy:        updated.LastUpdatedBy,
		UpdatedAt:        updated.LastUpdatedAt,
	}
	if err := s.publisher.PublishRateUpdated(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish exchange rate update",
			slog.String("exchange_rate_id", updated.ExchangeRateID))
	}
}
