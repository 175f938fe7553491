package pgsql

import (
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	exchangeRateRepo := NewPgxExchangeRateRepository(dbPool)
	settingRepo := NewPgxSettingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: exchangeRateRepo,
		SettingRepo:      settingRepo,
		TxManager:        &BaseRepository{Pool: dbPool},
	}
}
