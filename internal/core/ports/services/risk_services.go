package services

import (
	"context"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_risk_dashboard/internal/dto"
)

// PositionReaderSvc defines read operations for rate-enriched positions
type PositionReaderSvc interface {
	// ListPositions returns every position enriched with its latest rate.
	// Any enrichment failure fails the whole call.
	ListPositions(ctx context.Context) ([]domain.CurrencyPosition, error)

	// GetPosition returns one enriched position; found is false when the currency is unknown.
	GetPosition(ctx context.Context, currency string) (position *domain.CurrencyPosition, found bool, err error)

	// ListPositionsByRiskLevel returns enriched positions stored with the given tier.
	ListPositionsByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]domain.CurrencyPosition, error)

	// ListLowBalancePositions returns enriched positions whose |net| is below the low-balance floor.
	ListLowBalancePositions(ctx context.Context) ([]domain.CurrencyPosition, error)
}

// PositionWriterSvc defines write operations for positions
type PositionWriterSvc interface {
	// UpdatePosition validates, classifies and persists a position.
	UpdatePosition(ctx context.Context, req dto.UpsertPositionRequest) (*domain.CurrencyPosition, error)
}

// AlertReaderSvc produces the current alert set
type AlertReaderSvc interface {
	// ListAlerts scans all positions against the alert rules.
	ListAlerts(ctx context.Context) ([]domain.RiskAlert, error)
}

// RiskEngineSvcFacade combines all risk engine operations
type RiskEngineSvcFacade interface {
	PositionReaderSvc
	PositionWriterSvc
	AlertReaderSvc
}
