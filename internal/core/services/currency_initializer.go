package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/currency"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedRate is one rate the initializer inserts when its pair is missing.
type SeedRate struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
}

// DefaultSeedRates are the initial rates into the legal tender.
var DefaultSeedRates = []SeedRate{
	{FromCurrencyCode: "USD", ToCurrencyCode: currency.LegalTenderCurrencyCode, Rate: decimal.NewFromInt(200)},
	{FromCurrencyCode: "EUR", ToCurrencyCode: currency.LegalTenderCurrencyCode, Rate: decimal.NewFromInt(220)},
	{FromCurrencyCode: "CNY", ToCurrencyCode: currency.LegalTenderCurrencyCode, Rate: decimal.NewFromInt(30)},
	{FromCurrencyCode: "PLACEHOLDER", ToCurrencyCode: currency.LegalTenderCurrencyCode, Rate: decimal.NewFromInt(100)},
}

// CurrencyInitializer seeds the initial exchange rates exactly once per database.
type CurrencyInitializer struct {
	BaseService
	txManager   portsrepo.TransactionManager
	settingRepo portsrepo.SettingTxStore
	rateRepo    portsrepo.ExchangeRateTxStore
	seeds       []SeedRate
	now         func() time.Time
}

// NewCurrencyInitializer creates an initializer that seeds DefaultSeedRates.
func NewCurrencyInitializer(txManager portsrepo.TransactionManager, settingRepo portsrepo.SettingTxStore, rateRepo portsrepo.ExchangeRateTxStore) *CurrencyInitializer {
	return &CurrencyInitializer{
		txManager:   txManager,
		settingRepo: settingRepo,
		rateRepo:    rateRepo,
		seeds:       DefaultSeedRates,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.CurrencyInitializerSvc = (*CurrencyInitializer)(nil)

// Run seeds missing rates and marks currency initialization done, all in one transaction.
// The settings row is locked for the whole run so concurrent starts serialize.
func (i *CurrencyInitializer) Run(ctx context.Context) error {
	logger := i.GetLogger(ctx)

	tx, err := i.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("currency initialization: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := i.txManager.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to roll back currency initialization", slog.String("error", rbErr.Error()))
		}
	}()

	setting, err := i.settingRepo.GetOrCreateForUpdateTx(ctx, tx)
	if err != nil {
		return fmt.Errorf("currency initialization: %w", err)
	}
	if setting.CurrencyInitDone() {
		logger.Info("Currency initialization already done, skipping")
		return nil
	}

	now := i.now()
	seeded := 0
	for _, seed := range i.seeds {
		_, findErr := i.rateRepo.FindDirectTx(ctx, tx, seed.FromCurrencyCode, seed.ToCurrencyCode)
		if findErr == nil {
			continue
		}
		if !errors.Is(findErr, apperrors.ErrNotFound) {
			return fmt.Errorf("currency initialization: checking %s -> %s: %w", seed.FromCurrencyCode, seed.ToCurrencyCode, findErr)
		}

		rate := domain.ExchangeRate{
			ExchangeRateID:   uuid.NewString(),
			FromCurrencyCode: seed.FromCurrencyCode,
			ToCurrencyCode:   seed.ToCurrencyCode,
			Rate:             seed.Rate,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     domain.SystemActor,
				LastUpdatedAt: now,
				LastUpdatedBy: domain.SystemActor,
			},
		}
		if err := i.rateRepo.CreateTx(ctx, tx, rate); err != nil {
			return fmt.Errorf("currency initialization: seeding %s -> %s: %w", seed.FromCurrencyCode, seed.ToCurrencyCode, err)
		}
		seeded++
	}

	setting.CurrencyInitialized = true
	setting.Config.Init.Currency = true
	setting.UpdatedAt = now
	if err := i.settingRepo.SaveInitFlagsTx(ctx, tx, *setting); err != nil {
		return fmt.Errorf("currency initialization: %w", err)
	}

	if err := i.txManager.Commit(ctx, tx); err != nil {
		return fmt.Errorf("currency initialization: %w", err)
	}
	committed = true

	logger.Info("Currency initialization completed", slog.Int("seeded_rates", seeded))
	return nil
}
