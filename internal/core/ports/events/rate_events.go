package events

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
)

// RateEventPublisher announces exchange rate changes to other modules.
type RateEventPublisher interface {
	PublishRateUpdated(ctx context.Context, event domain.ExchangeRateUpdatedEvent) error
	Close() error
}
