package mapping

import (
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_risk_dashboard/internal/models"
)

// ToModelPosition converts a domain CurrencyPosition to a model CurrencyPosition.
// Rate enrichment fields are read-time only and are dropped.
func ToModelPosition(d domain.CurrencyPosition) models.CurrencyPosition {
	return models.CurrencyPosition{
		PositionID:      d.PositionID,
		Currency:        d.Currency,
		Balance:         d.Balance,
		PendingIncome:   d.PendingIncome,
		PendingPayments: d.PendingPayments,
		RiskLevel:       string(d.RiskLevel),
		LastUpdated:     d.LastUpdated,
	}
}

// ToDomainPosition converts a model CurrencyPosition to a domain CurrencyPosition
func ToDomainPosition(m models.CurrencyPosition) domain.CurrencyPosition {
	return domain.CurrencyPosition{
		PositionID:      m.PositionID,
		Currency:        m.Currency,
		Balance:         m.Balance,
		PendingIncome:   m.PendingIncome,
		PendingPayments: m.PendingPayments,
		RiskLevel:       domain.RiskLevel(m.RiskLevel),
		AuditFields:     domain.AuditFields{LastUpdated: m.LastUpdated},
	}
}

// ToDomainPositions converts a slice of model positions.
func ToDomainPositions(ms []models.CurrencyPosition) []domain.CurrencyPosition {
	positions := make([]domain.CurrencyPosition, len(ms))
	for i, m := range ms {
		positions[i] = ToDomainPosition(m)
	}
	return positions
}
