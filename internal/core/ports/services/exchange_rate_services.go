package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetLatestRate retrieves the most recent quote for a pair.
	GetLatestRate(ctx context.Context, currencyPair string) (*domain.ExchangeRate, error)

	// GetRateHistory retrieves quotes for a pair within [start, end], newest first.
	GetRateHistory(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// RecordRate persists a new quote.
	RecordRate(ctx context.Context, req dto.RecordExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
