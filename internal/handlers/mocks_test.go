package handlers_test

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies() []domain.Currency {
	return m.Called().Get(0).([]domain.Currency)
}

func (m *MockCurrencyService) ListActiveCurrencies() []domain.Currency {
	return m.Called().Get(0).([]domain.Currency)
}

func (m *MockCurrencyService) GetCurrencyByCode(code string) (domain.Currency, error) {
	args := m.Called(code)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetBaseCurrency() domain.Currency {
	return m.Called().Get(0).(domain.Currency)
}

func (m *MockCurrencyService) GetLegalTenderCurrency() domain.Currency {
	return m.Called().Get(0).(domain.Currency)
}

func (m *MockCurrencyService) ResolveRate(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedRate), args.Error(1)
}

func (m *MockCurrencyService) CalculateRate(ctx context.Context, fromCode, toCode string) (string, error) {
	args := m.Called(ctx, fromCode, toCode)
	return args.String(0), args.Error(1)
}

func (m *MockCurrencyService) Exchange(ctx context.Context, fromCode, toCode, amount string) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, fromCode, toCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeResult), args.Error(1)
}

func (m *MockCurrencyService) BaseToLegalLatestRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) FindAllCurrent(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) FindCurrentRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) FindCurrentRateByCurrency(ctx context.Context, code string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) UpdateByCurrencyPair(ctx context.Context, fromCode, toCode string, req dto.UpdateExchangeRateRequest, actorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) UpdateByCurrency(ctx context.Context, code string, req dto.UpdateExchangeRateRequest, actorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, code, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
