package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestRate retrieves the quote with the greatest timestamp for a pair.
	// It returns an error matching apperrors.ErrNotFound when the pair has no quotes.
	FindLatestRate(ctx context.Context, currencyPair string) (*domain.ExchangeRate, error)

	// FindRatesInRange retrieves quotes with start <= timestamp <= end, newest first.
	FindRatesInRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveRate appends a new quote to the pair's time series.
	SaveRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
