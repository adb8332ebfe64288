package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fx_risk_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/fx_risk_dashboard/internal/models"
	"github.com/SscSPs/fx_risk_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const positionColumns = `id, currency, balance, pending_income, pending_payments, risk_level, last_updated`

// PgxPositionRepository implements the PositionRepositoryFacade interface using pgxpool.
type PgxPositionRepository struct {
	BaseRepository
}

// newPgxPositionRepository creates a new repository for position data.
func newPgxPositionRepository(pool *pgxpool.Pool) portsrepo.PositionRepositoryFacade {
	return &PgxPositionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// ListPositions retrieves every position ordered by id.
func (r *PgxPositionRepository) ListPositions(ctx context.Context) ([]domain.CurrencyPosition, error) {
	query := `SELECT ` + positionColumns + ` FROM currency_positions ORDER BY id`
	return r.queryPositions(ctx, query)
}

// FindPositionByCurrency retrieves a position by its currency code.
func (r *PgxPositionRepository) FindPositionByCurrency(ctx context.Context, currency string) (*domain.CurrencyPosition, error) {
	query := `SELECT ` + positionColumns + ` FROM currency_positions WHERE currency = $1`

	m, err := scanPosition(r.Pool.QueryRow(ctx, query, currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("position for currency %s not found", currency))
		}
		return nil, apperrors.NewAppError(500, "failed to find position", err)
	}

	position := mapping.ToDomainPosition(m)
	return &position, nil
}

// FindPositionsByRiskLevel retrieves positions whose stored tier equals level.
func (r *PgxPositionRepository) FindPositionsByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]domain.CurrencyPosition, error) {
	query := `SELECT ` + positionColumns + ` FROM currency_positions WHERE risk_level = $1 ORDER BY id`
	return r.queryPositions(ctx, query, string(level))
}

// FindPositionsWithAbsNetBelow retrieves positions with |balance + pending_income - pending_payments| < threshold.
func (r *PgxPositionRepository) FindPositionsWithAbsNetBelow(ctx context.Context, threshold decimal.Decimal) ([]domain.CurrencyPosition, error) {
	query := `SELECT ` + positionColumns + ` FROM currency_positions
		WHERE ABS(balance + pending_income - pending_payments) < $1
		ORDER BY id`
	return r.queryPositions(ctx, query, threshold)
}

// SavePosition upserts a position by currency; the last write wins.
func (r *PgxPositionRepository) SavePosition(ctx context.Context, position domain.CurrencyPosition) (*domain.CurrencyPosition, error) {
	m := mapping.ToModelPosition(position)
	query := `
		INSERT INTO currency_positions (currency, balance, pending_income, pending_payments, risk_level, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (currency) DO UPDATE SET
			balance = EXCLUDED.balance,
			pending_income = EXCLUDED.pending_income,
			pending_payments = EXCLUDED.pending_payments,
			risk_level = EXCLUDED.risk_level,
			last_updated = EXCLUDED.last_updated
		RETURNING ` + positionColumns

	saved, err := scanPosition(r.Pool.QueryRow(ctx, query,
		m.Currency, m.Balance, m.PendingIncome, m.PendingPayments, m.RiskLevel, m.LastUpdated,
	))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save position", err)
	}

	result := mapping.ToDomainPosition(saved)
	return &result, nil
}

func (r *PgxPositionRepository) queryPositions(ctx context.Context, query string, args ...any) ([]domain.CurrencyPosition, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query positions", err)
	}
	defer rows.Close()

	var ms []models.CurrencyPosition
	for rows.Next() {
		m, err := scanPosition(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan position", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating position rows", err)
	}

	return mapping.ToDomainPositions(ms), nil
}

func scanPosition(row rowScanner) (models.CurrencyPosition, error) {
	var m models.CurrencyPosition
	err := row.Scan(
		&m.PositionID, &m.Currency, &m.Balance, &m.PendingIncome, &m.PendingPayments,
		&m.RiskLevel, &m.LastUpdated,
	)
	return m, err
}
