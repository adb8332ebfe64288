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
	portssvc "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/risk"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
	"github.com/SscSPs/fx_risk_dashboard/internal/platform/metrics"
	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// RiskEngine orchestrates position enrichment, classification and alerting.
type RiskEngine struct {
	BaseService
	positionRepo portsrepo.PositionRepositoryFacade
	rateRepo     portsrepo.ExchangeRateReader
	thresholds   risk.Thresholds
	pairs        risk.PairConvention
	alertTTL     time.Duration
	now          func() time.Time

	classifier risk.Classifier
	resolver   *RateResolver
	alerts     *AlertGenerator
}

// RiskEngineOption is a functional option for configuring the risk engine
type RiskEngineOption func(*RiskEngine)

// WithThresholds overrides the default classification and low-balance thresholds.
func WithThresholds(t risk.Thresholds) RiskEngineOption {
	return func(e *RiskEngine) {
		e.thresholds = t
	}
}

// WithPairConvention overrides which currencies are quoted as <CCY>USD.
func WithPairConvention(pairs risk.PairConvention) RiskEngineOption {
	return func(e *RiskEngine) {
		e.pairs = pairs
	}
}

// WithAlertTTL sets the lifetime stamped on generated alerts.
func WithAlertTTL(ttl time.Duration) RiskEngineOption {
	return func(e *RiskEngine) {
		e.alertTTL = ttl
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RiskEngineOption {
	return func(e *RiskEngine) {
		e.now = now
	}
}

// NewRiskEngine creates a RiskEngine backed by the given stores.
func NewRiskEngine(positionRepo portsrepo.PositionRepositoryFacade, rateRepo portsrepo.ExchangeRateReader, options ...RiskEngineOption) *RiskEngine {
	e := &RiskEngine{
		positionRepo: positionRepo,
		rateRepo:     rateRepo,
		thresholds:   risk.DefaultThresholds(),
		pairs:        risk.DefaultPairConvention(),
		now:          time.Now,
	}
	for _, option := range options {
		option(e)
	}

	e.classifier = risk.NewClassifier(e.thresholds)
	e.resolver = NewRateResolver(rateRepo, e.pairs, e.now)
	e.alerts = NewAlertGenerator(positionRepo, e.thresholds, e.alertTTL, e.now)
	return e
}

// ListPositions returns all positions with their latest rates.
func (e *RiskEngine) ListPositions(ctx context.Context) ([]domain.CurrencyPosition, error) {
	positions, err := e.positionRepo.ListPositions(ctx)
	if err != nil {
		e.LogError(ctx, err, "Failed to list positions")
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return e.enrichAll(ctx, positions)
}

// GetPosition returns the enriched position for currency. An unknown or malformed currency
// is reported through found=false.
func (e *RiskEngine) GetPosition(ctx context.Context, currency string) (*domain.CurrencyPosition, bool, error) {
	currency = domain.NormalizeCurrencyCode(currency)
	if !domain.IsCurrencyCode(currency) {
		return nil, false, nil
	}

	position, err := e.positionRepo.FindPositionByCurrency(ctx, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			e.LogDebug(ctx, "Position not found", slog.String("currency", currency))
			return nil, false, nil
		}
		e.LogError(ctx, err, "Failed to find position", slog.String("currency", currency))
		return nil, false, fmt.Errorf("failed to find position %s: %w", currency, err)
	}

	if err := e.resolver.Enrich(ctx, position); err != nil {
		return nil, false, fmt.Errorf("failed to enrich position %s: %w", currency, err)
	}
	return position, true, nil
}

// ListPositionsByRiskLevel returns enriched positions stored with the given tier.
func (e *RiskEngine) ListPositionsByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]domain.CurrencyPosition, error) {
	if !level.IsValid() {
		return nil, apperrors.NewValidationError("riskLevel", fmt.Sprintf("unknown risk level %q", level))
	}
	positions, err := e.positionRepo.FindPositionsByRiskLevel(ctx, level)
	if err != nil {
		e.LogError(ctx, err, "Failed to list positions by risk level", slog.String("risk_level", string(level)))
		return nil, fmt.Errorf("failed to list %s positions: %w", level, err)
	}
	return e.enrichAll(ctx, positions)
}

// ListLowBalancePositions returns enriched positions whose |net| is below the low-balance floor.
func (e *RiskEngine) ListLowBalancePositions(ctx context.Context) ([]domain.CurrencyPosition, error) {
	positions, err := e.positionRepo.FindPositionsWithAbsNetBelow(ctx, e.thresholds.LowBalance)
	if err != nil {
		e.LogError(ctx, err, "Failed to list low balance positions")
		return nil, fmt.Errorf("failed to list low balance positions: %w", err)
	}
	return e.enrichAll(ctx, positions)
}

// UpdatePosition validates the request, derives the risk tier and persists the position.
// The store is not touched when validation fails.
func (e *RiskEngine) UpdatePosition(ctx context.Context, req dto.UpsertPositionRequest) (*domain.CurrencyPosition, error) {
	position, err := e.positionFromRequest(req)
	if err != nil {
		e.LogDebug(ctx, "Rejected position update", slog.String("error", err.Error()))
		return nil, err
	}
	e.classifier.ClassifyPosition(&position)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saved, err := e.positionRepo.SavePosition(ctx, position)
	if err != nil {
		e.LogError(ctx, err, "Failed to save position", slog.String("currency", position.Currency))
		return nil, fmt.Errorf("failed to save position %s: %w", position.Currency, err)
	}

	metrics.PositionUpdates.WithLabelValues(string(saved.RiskLevel)).Inc()
	e.LogInfo(ctx, "Position updated",
		slog.String("currency", saved.Currency),
		slog.String("net_exposure", saved.NetExposure().String()),
		slog.String("risk_level", string(saved.RiskLevel)))
	return saved, nil
}

// ListAlerts runs the alert rules over all stored positions.
func (e *RiskEngine) ListAlerts(ctx context.Context) ([]domain.RiskAlert, error) {
	return e.alerts.Generate(ctx)
}

func (e *RiskEngine) enrichAll(ctx context.Context, positions []domain.CurrencyPosition) ([]domain.CurrencyPosition, error) {
	for i := range positions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.resolver.Enrich(ctx, &positions[i]); err != nil {
			e.LogError(ctx, err, "Failed to enrich position", slog.String("currency", positions[i].Currency))
			return nil, fmt.Errorf("failed to enrich position %s: %w", positions[i].Currency, err)
		}
	}
	return positions, nil
}

func (e *RiskEngine) positionFromRequest(req dto.UpsertPositionRequest) (domain.CurrencyPosition, error) {
	currency := domain.NormalizeCurrencyCode(req.Currency)
	if currency == "" {
		return domain.CurrencyPosition{}, apperrors.NewValidationError("currency", "must not be empty")
	}
	if !domain.IsCurrencyCode(currency) {
		return domain.CurrencyPosition{}, apperrors.NewValidationError("currency", "must be a 3-letter ISO 4217 code")
	}
	if req.Balance == nil {
		return domain.CurrencyPosition{}, apperrors.NewValidationError("balance", "is required")
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"balance", *req.Balance},
		{"pendingIncome", valueOrZero(req.PendingIncome)},
		{"pendingPayments", valueOrZero(req.PendingPayments)},
	}
	for _, a := range amounts {
		if !utils.HasAtMostScale(a.value, domain.AmountScale) {
			return domain.CurrencyPosition{}, apperrors.NewValidationError(a.field, fmt.Sprintf("must have at most %d decimal places", domain.AmountScale))
		}
	}

	return domain.CurrencyPosition{
		Currency:        currency,
		Balance:         amounts[0].value,
		PendingIncome:   amounts[1].value,
		PendingPayments: amounts[2].value,
		AuditFields:     domain.AuditFields{LastUpdated: e.now()},
	}, nil
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

var _ portssvc.RiskEngineSvcFacade = (*RiskEngine)(nil)
