package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/fx_risk_dashboard/internal/models"
	"github.com/SscSPs/fx_risk_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `id, currency_pair, rate, bid, ask, quoted_at, source, volatility_index`

// PgxExchangeRateRepository implements the ExchangeRateRepositoryFacade interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// FindLatestRate retrieves the quote with the greatest timestamp for a pair.
// Ties on timestamp go to the most recently inserted row.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, currencyPair string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_pair = $1
		ORDER BY quoted_at DESC, id DESC
		LIMIT 1`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, currencyPair))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no exchange rate for %s", currencyPair))
		}
		return nil, apperrors.NewAppError(500, "failed to find latest exchange rate", err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// FindRatesInRange retrieves quotes with start <= quoted_at <= end, newest first.
func (r *PgxExchangeRateRepository) FindRatesInRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_pair = $1 AND quoted_at BETWEEN $2 AND $3
		ORDER BY quoted_at DESC, id DESC`

	rows, err := r.Pool.Query(ctx, query, currencyPair, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query exchange rates", err)
	}
	defer rows.Close()

	var ms []models.ExchangeRate
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rate rows", err)
	}

	return mapping.ToDomainExchangeRates(ms), nil
}

// SaveRate appends a quote. Stored quotes are never updated.
func (r *PgxExchangeRateRepository) SaveRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	m := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (currency_pair, rate, bid, ask, quoted_at, source, volatility_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + exchangeRateColumns

	saved, err := scanExchangeRate(r.Pool.QueryRow(ctx, query,
		m.CurrencyPair, m.Rate, m.Bid, m.Ask, m.QuotedAt, m.Source, m.VolatilityIndex,
	))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save exchange rate", err)
	}

	result := mapping.ToDomainExchangeRate(saved)
	return &result, nil
}

func scanExchangeRate(row rowScanner) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.CurrencyPair, &m.Rate, &m.Bid, &m.Ask,
		&m.QuotedAt, &m.Source, &m.VolatilityIndex,
	)
	return m, err
}
