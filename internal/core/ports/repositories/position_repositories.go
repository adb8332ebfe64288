package repositories

import (
	"context"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PositionReader defines read operations for currency positions
type PositionReader interface {
	// ListPositions retrieves every position in a stable order.
	ListPositions(ctx context.Context) ([]domain.CurrencyPosition, error)

	// FindPositionByCurrency retrieves a position by its currency code.
	// It returns an error matching apperrors.ErrNotFound when no position exists.
	FindPositionByCurrency(ctx context.Context, currency string) (*domain.CurrencyPosition, error)

	// FindPositionsByRiskLevel retrieves positions whose stored tier equals level.
	FindPositionsByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]domain.CurrencyPosition, error)

	// FindPositionsWithAbsNetBelow retrieves positions with |balance + pendingIncome - pendingPayments| < threshold.
	FindPositionsWithAbsNetBelow(ctx context.Context, threshold decimal.Decimal) ([]domain.CurrencyPosition, error)
}

// PositionWriter defines write operations for currency positions
type PositionWriter interface {
	// SavePosition inserts or replaces the position identified by its currency.
	SavePosition(ctx context.Context, position domain.CurrencyPosition) (*domain.CurrencyPosition, error)
}

// PositionRepositoryFacade combines all position-related repository interfaces
type PositionRepositoryFacade interface {
	PositionReader
	PositionWriter
}
