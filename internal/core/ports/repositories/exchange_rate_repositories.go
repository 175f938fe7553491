package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindDirect retrieves the effective row for an exact (from, to) pair.
	// Returns an error wrapping apperrors.ErrNotFound when no row exists.
	FindDirect(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// FindByID retrieves a rate row by its ID.
	FindByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindAll retrieves every rate row ordered by from and to currency code.
	FindAll(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// Create inserts a new directional rate row.
	Create(ctx context.Context, rate domain.ExchangeRate) error

	// UpdateRate changes the rate of an existing row in place.
	UpdateRate(ctx context.Context, rateID string, rate decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// ExchangeRateTxStore exposes the operations the bootstrap initializer runs inside a transaction.
type ExchangeRateTxStore interface {
	FindDirectTx(ctx context.Context, tx pgx.Tx, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)
	CreateTx(ctx context.Context, tx pgx.Tx, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
	ExchangeRateTxStore
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
