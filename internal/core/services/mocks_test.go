package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindDirect(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindAll(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) Create(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) UpdateRate(ctx context.Context, rateID string, rate decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, rateID, rate, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindDirectTx(ctx context.Context, tx pgx.Tx, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, tx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) CreateTx(ctx context.Context, tx pgx.Tx, rate domain.ExchangeRate) error {
	args := m.Called(ctx, tx, rate)
	return args.Error(0)
}

// --- Mock SettingRepository ---
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) GetOrCreateForUpdateTx(ctx context.Context, tx pgx.Tx) (*domain.Setting, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) SaveInitFlagsTx(ctx context.Context, tx pgx.Tx, setting domain.Setting) error {
	args := m.Called(ctx, tx, setting)
	return args.Error(0)
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock RateEventPublisher ---
type MockRateEventPublisher struct {
	mock.Mock
}

func (m *MockRateEventPublisher) PublishRateUpdated(ctx context.Context, event domain.ExchangeRateUpdatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockRateEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// fakeTx stands in for an open transaction; mocks only compare it by identity.
type fakeTx struct {
	pgx.Tx
	name string
}

func rateRow(id, from, to, rate string) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ExchangeRateID:   id,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		AuditFields: domain.AuditFields{
			CreatedBy:     domain.SystemActor,
			LastUpdatedBy: domain.SystemActor,
		},
	}
}
