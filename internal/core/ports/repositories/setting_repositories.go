package repositories

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SettingReader defines read operations for the system settings record.
type SettingReader interface {
	// GetOrCreate returns the settings row, inserting an empty one if none exists.
	GetOrCreate(ctx context.Context) (*domain.Setting, error)
}

// SettingTxStore defines settings operations that run inside a caller-owned transaction.
type SettingTxStore interface {
	// GetOrCreateForUpdateTx returns the settings row locked for update, inserting it first if missing.
	GetOrCreateForUpdateTx(ctx context.Context, tx pgx.Tx) (*domain.Setting, error)

	// SaveInitFlagsTx persists the init flags (column and JSON config) of the given setting.
	SaveInitFlagsTx(ctx context.Context, tx pgx.Tx, setting domain.Setting) error
}

// SettingRepositoryFacade combines all setting-related repository interfaces
type SettingRepositoryFacade interface {
	SettingReader
	SettingTxStore
}

// SettingRepositoryWithTx extends SettingRepositoryFacade with transaction capabilities
type SettingRepositoryWithTx interface {
	SettingRepositoryFacade
	TransactionManager
}
