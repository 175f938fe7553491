package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const exchangeRateColumns = `id, from_currency_code, to_currency_code, rate::text,
			created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements the ExchangeRateRepositoryWithTx port using pgx.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db PgxPool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (*domain.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode, &m.Rate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d, err := mapping.ToDomainExchangeRate(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func findDirect(ctx context.Context, q querier, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	// Duplicate pairs are possible; the oldest row wins.
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM currency_exchange_rate
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY created_at, id
		LIMIT 1;
	`
	rate, err := scanExchangeRate(q.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("exchange rate %s -> %s not found", fromCurrencyCode, toCurrencyCode))
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}
	return rate, nil
}

func insertExchangeRate(ctx context.Context, q querier, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := q.Exec(ctx, `
		INSERT INTO currency_exchange_rate (
			id, from_currency_code, to_currency_code, rate,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode, m.Rate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to create exchange rate", err)
	}
	return nil
}

// FindDirect retrieves the effective row for an exact currency pair.
func (r *PgxExchangeRateRepository) FindDirect(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	return findDirect(ctx, r.Pool, fromCurrencyCode, toCurrencyCode)
}

// FindDirectTx is FindDirect inside the caller's transaction.
func (r *PgxExchangeRateRepository) FindDirectTx(ctx context.Context, tx pgx.Tx, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	return findDirect(ctx, tx, fromCurrencyCode, toCurrencyCode)
}

// FindByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM currency_exchange_rate
		WHERE id = $1;
	`
	rate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get exchange rate by ID", err)
	}
	return rate, nil
}

// FindAll retrieves every stored rate ordered by currency pair.
func (r *PgxExchangeRateRepository) FindAll(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM currency_exchange_rate
		ORDER BY from_currency_code, to_currency_code, created_at, id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		rate, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rate rows", err)
	}
	return rates, nil
}

// Create inserts a new exchange rate row.
func (r *PgxExchangeRateRepository) Create(ctx context.Context, rate domain.ExchangeRate) error {
	return insertExchangeRate(ctx, r.Pool, rate)
}

// CreateTx inserts a new exchange rate row inside the caller's transaction.
func (r *PgxExchangeRateRepository) CreateTx(ctx context.Context, tx pgx.Tx, rate domain.ExchangeRate) error {
	return insertExchangeRate(ctx, tx, rate)
}

// UpdateRate changes the rate and audit columns of an existing row.
func (r *PgxExchangeRateRepository) UpdateRate(ctx context.Context, rateID string, rate decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE currency_exchange_rate
		SET rate = $1, last_updated_at = $2, last_updated_by = $3
		WHERE id = $4;`,
		utils.FormatRate(rate), updatedAt, updatedBy, rateID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update exchange rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
	}
	return nil
}
