// Package seed loads the demo dataset used by the dashboard.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/shopspring/decimal"
)

// Source tags every seeded quote.
const Source = "MOCK_DATA"

type positionSeed struct {
	currency                           string
	balance, pendingIncome, pendingPay string
}

type rateSeed struct {
	pair                string
	rate, bid, ask, vol string
	age                 time.Duration
}

var positions = []positionSeed{
	{"USD", "1000000.00", "50000.00", "30000.00"},
	{"EUR", "800000.00", "25000.00", "75000.00"},
	{"GBP", "600000.00", "15000.00", "45000.00"},
	{"JPY", "50000000.00", "1000000.00", "2000000.00"},
	{"CNY", "2000000.00", "100000.00", "300000.00"},
}

var rates = []rateSeed{
	{"EURUSD", "1.0850", "1.0848", "1.0852", "0.12", 0},
	{"GBPUSD", "1.2650", "1.2648", "1.2652", "0.15", 0},
	{"USDJPY", "150.50", "150.48", "150.52", "0.18", 0},
	{"USDCNY", "7.2010", "7.2008", "7.2012", "0.08", 0},
	{"EURUSD", "1.0855", "1.0853", "1.0857", "0.11", 5 * time.Minute},
	{"GBPUSD", "1.2645", "1.2643", "1.2647", "0.14", 5 * time.Minute},
}

// Seeder writes the demo positions and quotes through the services, so risk tiers are derived
// rather than copied.
type Seeder struct {
	positions portssvc.PositionWriterSvc
	rates     portssvc.ExchangeRateWriterSvc
	now       func() time.Time
	logger    *slog.Logger
}

// NewSeeder creates a Seeder. A nil clock defaults to time.Now.
func NewSeeder(positions portssvc.PositionWriterSvc, rates portssvc.ExchangeRateWriterSvc, now func() time.Time, logger *slog.Logger) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{positions: positions, rates: rates, now: now, logger: logger}
}

// Run upserts every demo position and appends every demo quote.
func (s *Seeder) Run(ctx context.Context) error {
	for _, p := range positions {
		req := dto.UpsertPositionRequest{
			Currency:        p.currency,
			Balance:         mustDecimal(p.balance),
			PendingIncome:   mustDecimal(p.pendingIncome),
			PendingPayments: mustDecimal(p.pendingPay),
		}
		saved, err := s.positions.UpdatePosition(ctx, req)
		if err != nil {
			return fmt.Errorf("seed position %s: %w", p.currency, err)
		}
		s.logger.Info("Seeded position", slog.String("currency", saved.Currency), slog.String("risk_level", string(saved.RiskLevel)))
	}

	now := s.now()
	for _, r := range rates {
		ts := now.Add(-r.age)
		req := dto.RecordExchangeRateRequest{
			CurrencyPair:    r.pair,
			Rate:            mustDecimal(r.rate),
			Bid:             mustDecimal(r.bid),
			Ask:             mustDecimal(r.ask),
			Timestamp:       &ts,
			Source:          Source,
			VolatilityIndex: mustDecimal(r.vol),
		}
		if _, err := s.rates.RecordRate(ctx, req); err != nil {
			return fmt.Errorf("seed rate %s: %w", r.pair, err)
		}
	}
	s.logger.Info("Seed data loaded", slog.Int("positions", len(positions)), slog.Int("rates", len(rates)))
	return nil
}

func mustDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
