package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/middleware"
	"github.com/SscSPs/fx_risk_dashboard/internal/platform/metrics"
)

// AlertScanJob periodically runs the alert rules and publishes the per-level counts.
type AlertScanJob struct {
	alerts  portssvc.AlertReaderSvc
	timeout time.Duration
	logger  *slog.Logger
}

// NewAlertScanJob creates the job. A zero timeout means the scan is bounded only by shutdown.
func NewAlertScanJob(alerts portssvc.AlertReaderSvc, timeout time.Duration, logger *slog.Logger) *AlertScanJob {
	return &AlertScanJob{alerts: alerts, timeout: timeout, logger: logger.With(slog.String("job", "alert_scan"))}
}

func (j *AlertScanJob) Name() string {
	return "alert_scan"
}

// Run lists the current alerts and updates the active alert gauge.
// The gauge keeps its previous values when the scan fails.
func (j *AlertScanJob) Run(ctx context.Context) error {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}
	ctx = middleware.WithLogger(ctx, j.logger)

	alerts, err := j.alerts.ListAlerts(ctx)
	if err != nil {
		return err
	}

	counts := map[domain.AlertLevel]int{
		domain.AlertLow:    0,
		domain.AlertMedium: 0,
		domain.AlertHigh:   0,
	}
	for _, a := range alerts {
		counts[a.Level]++
	}
	for level, n := range counts {
		metrics.ActiveAlerts.WithLabelValues(string(level)).Set(float64(n))
	}

	j.logger.Info("Alert scan finished",
		slog.Int("high", counts[domain.AlertHigh]),
		slog.Int("medium", counts[domain.AlertMedium]),
		slog.Int("low", counts[domain.AlertLow]))
	return nil
}
