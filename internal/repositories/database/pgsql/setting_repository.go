package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgxSettingRepository stores the single sys_setting row.
type PgxSettingRepository struct {
	BaseRepository
}

// NewPgxSettingRepository creates a new PgxSettingRepository.
func NewPgxSettingRepository(db PgxPool) *PgxSettingRepository {
	return &PgxSettingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.SettingRepositoryWithTx = (*PgxSettingRepository)(nil)

// ensureSetting inserts the empty settings row unless one exists.
// The singleton index on sys_setting makes concurrent inserts collapse into one row.
func ensureSetting(ctx context.Context, q querier) error {
	now := time.Now().UTC()
	_, err := q.Exec(ctx, `
		INSERT INTO sys_setting (id, config, currency_initialized, created_at, updated_at)
		VALUES ($1, '{}'::jsonb, false, $2, $2)
		ON CONFLICT DO NOTHING;`,
		uuid.NewString(), now,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to create settings", err)
	}
	return nil
}

func selectSetting(ctx context.Context, q querier, forUpdate bool) (*domain.Setting, error) {
	query := `
		SELECT id, config, currency_initialized, created_at, updated_at
		FROM sys_setting
		ORDER BY created_at
		LIMIT 1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var m models.Setting
	err := q.QueryRow(ctx, query).Scan(&m.SettingID, &m.Config, &m.CurrencyInitialized, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read settings", err)
	}
	d, err := mapping.ToDomainSetting(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode settings", err)
	}
	return &d, nil
}

// GetOrCreate returns the settings row, creating it first when missing.
func (r *PgxSettingRepository) GetOrCreate(ctx context.Context) (*domain.Setting, error) {
	if err := ensureSetting(ctx, r.Pool); err != nil {
		return nil, err
	}
	return selectSetting(ctx, r.Pool, false)
}

// GetOrCreateForUpdateTx returns the settings row locked until tx ends.
func (r *PgxSettingRepository) GetOrCreateForUpdateTx(ctx context.Context, tx pgx.Tx) (*domain.Setting, error) {
	if err := ensureSetting(ctx, tx); err != nil {
		return nil, err
	}
	return selectSetting(ctx, tx, true)
}

// SaveInitFlagsTx writes the init flags of setting back to its row.
func (r *PgxSettingRepository) SaveInitFlagsTx(ctx context.Context, tx pgx.Tx, setting domain.Setting) error {
	m, err := mapping.ToModelSetting(setting)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode settings", err)
	}
	tag, err := tx.Exec(ctx, `
		UPDATE sys_setting
		SET config = $1, currency_initialized = $2, updated_at = $3
		WHERE id = $4;`,
		m.Config, m.CurrencyInitialized, m.UpdatedAt, m.SettingID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save settings", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("settings with ID " + m.SettingID + " not found")
	}
	return nil
}
