package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// DefaultRateSource is recorded when a quote arrives without a source.
const DefaultRateSource = "MANUAL"

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	now      func() time.Time
}

// NewExchangeRateService creates a new ExchangeRateService. A nil clock defaults to time.Now.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, now func() time.Time) *ExchangeRateService {
	if now == nil {
		now = time.Now
	}
	return &ExchangeRateService{rateRepo: rateRepo, now: now}
}

// RecordRate validates and appends a quote to the pair's history.
func (s *ExchangeRateService) RecordRate(ctx context.Context, req dto.RecordExchangeRateRequest) (*domain.ExchangeRate, error) {
	pair := strings.ToUpper(strings.TrimSpace(req.CurrencyPair))
	if !domain.IsCurrencyPair(pair) {
		return nil, apperrors.NewValidationError("currencyPair", "must be two 3-letter currency codes, e.g. EURUSD")
	}
	if req.Rate == nil || !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("rate", "must be positive")
	}
	if req.Bid != nil && req.Ask != nil && req.Bid.GreaterThan(*req.Ask) {
		return nil, apperrors.NewValidationError("bid", "must not exceed ask")
	}
	for _, q := range []struct {
		field string
		value *decimal.Decimal
		scale int32
	}{
		{"rate", req.Rate, domain.RateScale},
		{"bid", req.Bid, domain.RateScale},
		{"ask", req.Ask, domain.RateScale},
		{"volatilityIndex", req.VolatilityIndex, domain.VolatilityScale},
	} {
		if q.value != nil && !utils.HasAtMostScale(*q.value, q.scale) {
			return nil, apperrors.NewValidationError(q.field, fmt.Sprintf("must have at most %d decimal places", q.scale))
		}
	}

	rate := domain.ExchangeRate{
		CurrencyPair:    pair,
		Rate:            *req.Rate,
		Bid:             req.Bid,
		Ask:             req.Ask,
		Timestamp:       s.now(),
		Source:          strings.TrimSpace(req.Source),
		VolatilityIndex: req.VolatilityIndex,
	}
	if req.Timestamp != nil {
		rate.Timestamp = *req.Timestamp
	}
	if rate.Source == "" {
		rate.Source = DefaultRateSource
	}

	saved, err := s.rateRepo.SaveRate(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("currency_pair", pair))
		return nil, fmt.Errorf("failed to save exchange rate %s: %w", pair, err)
	}

	s.LogInfo(ctx, "Exchange rate recorded",
		slog.String("currency_pair", saved.CurrencyPair),
		slog.String("rate", saved.Rate.String()),
		slog.String("source", saved.Source))
	return saved, nil
}

// GetLatestRate returns the most recent quote for a pair.
func (s *ExchangeRateService) GetLatestRate(ctx context.Context, currencyPair string) (*domain.ExchangeRate, error) {
	pair := strings.ToUpper(strings.TrimSpace(currencyPair))
	if !domain.IsCurrencyPair(pair) {
		return nil, apperrors.NewValidationError("currencyPair", "must be two 3-letter currency codes, e.g. EURUSD")
	}

	rate, err := s.rateRepo.FindLatestRate(ctx, pair)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewRateNotFoundError(pair)
		}
		s.LogError(ctx, err, "Failed to get latest exchange rate", slog.String("currency_pair", pair))
		return nil, fmt.Errorf("failed to get latest rate for %s: %w", pair, err)
	}
	return rate, nil
}

// GetRateHistory returns quotes for a pair with start <= timestamp <= end, newest first.
func (s *ExchangeRateService) GetRateHistory(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.ExchangeRate, error) {
	pair := strings.ToUpper(strings.TrimSpace(currencyPair))
	if !domain.IsCurrencyPair(pair) {
		return nil, apperrors.NewValidationError("currencyPair", "must be two 3-letter currency codes, e.g. EURUSD")
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("start", "must not be after end")
	}

	rates, err := s.rateRepo.FindRatesInRange(ctx, pair, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to get exchange rate history", slog.String("currency_pair", pair))
		return nil, fmt.Errorf("failed to get rate history for %s: %w", pair, err)
	}
	return rates, nil
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
