package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/risk"
	"github.com/SscSPs/fx_risk_dashboard/internal/platform/metrics"
)

// AlertGenerator evaluates every stored position against the high-risk and low-balance rules.
type AlertGenerator struct {
	BaseService
	positionRepo portsrepo.PositionReader
	thresholds   risk.Thresholds
	ttl          time.Duration
	now          func() time.Time
}

// NewAlertGenerator creates an AlertGenerator. A nil clock defaults to time.Now.
func NewAlertGenerator(positionRepo portsrepo.PositionReader, thresholds risk.Thresholds, ttl time.Duration, now func() time.Time) *AlertGenerator {
	if now == nil {
		now = time.Now
	}
	return &AlertGenerator{positionRepo: positionRepo, thresholds: thresholds, ttl: ttl, now: now}
}

// Generate returns HIGH_RISK_POSITION alerts followed by LOW_BALANCE alerts, each group in store
// order. Positions that cannot be evaluated are skipped; store errors and cancellation abort.
func (g *AlertGenerator) Generate(ctx context.Context) ([]domain.RiskAlert, error) {
	positions, err := g.positionRepo.ListPositions(ctx)
	if err != nil {
		g.LogError(ctx, err, "Failed to list positions for alert scan")
		return nil, fmt.Errorf("failed to list positions for alert scan: %w", err)
	}

	stamp := risk.AlertStamp{Now: g.now(), TTL: g.ttl}
	var highRisk, lowBalance []domain.RiskAlert

	for _, p := range positions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("alert scan interrupted: %w", err)
		}
		if err := p.Validate(); err != nil {
			metrics.AlertEvaluationFailures.Inc()
			g.LogWarn(ctx, err, "Skipping position in alert scan", slog.String("currency", p.Currency), slog.Int64("position_id", p.PositionID))
			continue
		}

		net := p.NetExposure()
		if risk.Classify(net, g.thresholds) == domain.RiskHigh {
			highRisk = append(highRisk, risk.NewHighRiskAlert(p, net, g.thresholds, stamp))
		}
		if risk.IsLowBalance(net, g.thresholds) {
			lowBalance = append(lowBalance, risk.NewLowBalanceAlert(p, net, g.thresholds, stamp))
		}
	}

	metrics.AlertsGenerated.WithLabelValues(risk.TriggerHighRisk).Add(float64(len(highRisk)))
	metrics.AlertsGenerated.WithLabelValues(risk.TriggerLowBalance).Add(float64(len(lowBalance)))

	alerts := make([]domain.RiskAlert, 0, len(highRisk)+len(lowBalance))
	alerts = append(alerts, highRisk...)
	alerts = append(alerts, lowBalance...)

	g.LogDebug(ctx, "Alert scan complete", slog.Int("positions", len(positions)), slog.Int("alerts", len(alerts)))
	return alerts, nil
}
