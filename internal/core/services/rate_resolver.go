package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/risk"
	"github.com/SscSPs/fx_risk_dashboard/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// ResolvedRate is the quote used to enrich a position.
type ResolvedRate struct {
	Pair      string
	Rate      decimal.Decimal
	Timestamp time.Time
}

// RateResolver finds the latest USD quote for a currency.
type RateResolver struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
	pairs    risk.PairConvention
	now      func() time.Time
}

// NewRateResolver creates a RateResolver. A nil clock defaults to time.Now.
func NewRateResolver(rateRepo portsrepo.ExchangeRateReader, pairs risk.PairConvention, now func() time.Time) *RateResolver {
	if now == nil {
		now = time.Now
	}
	return &RateResolver{rateRepo: rateRepo, pairs: pairs, now: now}
}

// Resolve returns the rate for currency against USD. USD itself is always exactly 1 at the
// evaluation time and never touches the store. A pair without quotes yields *apperrors.RateNotFoundError.
func (r *RateResolver) Resolve(ctx context.Context, currency string) (ResolvedRate, error) {
	if currency == domain.BaseCurrency {
		return ResolvedRate{Pair: domain.BaseCurrency, Rate: decimal.NewFromInt(1), Timestamp: r.now()}, nil
	}

	pair := r.pairs.Pair(currency)
	rate, err := r.rateRepo.FindLatestRate(ctx, pair)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RateLookupFailures.WithLabelValues(pair).Inc()
			r.LogWarn(ctx, err, "No exchange rate available", slog.String("currency", currency), slog.String("currency_pair", pair))
			return ResolvedRate{}, apperrors.NewRateNotFoundError(pair)
		}
		return ResolvedRate{}, fmt.Errorf("failed to look up latest rate for %s: %w", pair, err)
	}
	return ResolvedRate{Pair: pair, Rate: rate.Rate, Timestamp: rate.Timestamp}, nil
}

// Enrich sets CurrentRate and RateTimestamp on p from the resolved quote.
func (r *RateResolver) Enrich(ctx context.Context, p *domain.CurrencyPosition) error {
	resolved, err := r.Resolve(ctx, p.Currency)
	if err != nil {
		return err
	}
	rate := resolved.Rate
	ts := resolved.Timestamp
	p.CurrentRate = &rate
	p.RateTimestamp = &ts
	return nil
}
