package dto

import (
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertPositionRequest defines the structure for creating or updating a currency position.
// Any riskLevel sent by the client is accepted for compatibility and then ignored.
type UpsertPositionRequest struct {
	Currency        string           `json:"currency" binding:"required,currencycode"`
	Balance         *decimal.Decimal `json:"balance" binding:"required"`
	PendingIncome   *decimal.Decimal `json:"pendingIncome"`
	PendingPayments *decimal.Decimal `json:"pendingPayments"`
	RiskLevel       string           `json:"riskLevel,omitempty"`
}

// PositionResponse defines the structure for API responses containing position details.
type PositionResponse struct {
	ID              int64            `json:"id"`
	Currency        string           `json:"currency"`
	Balance         decimal.Decimal  `json:"balance"`
	PendingIncome   decimal.Decimal  `json:"pendingIncome"`
	PendingPayments decimal.Decimal  `json:"pendingPayments"`
	NetExposure     decimal.Decimal  `json:"netExposure"`
	RiskLevel       string           `json:"riskLevel"`
	RiskDescription string           `json:"riskDescription"`
	CurrentRate     *decimal.Decimal `json:"currentRate,omitempty"`
	RateTimestamp   *time.Time       `json:"rateTimestamp,omitempty"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

// ToPositionResponse converts a domain.CurrencyPosition to PositionResponse DTO
func ToPositionResponse(p *domain.CurrencyPosition) PositionResponse {
	return PositionResponse{
		ID:              p.PositionID,
		Currency:        p.Currency,
		Balance:         p.Balance,
		PendingIncome:   p.PendingIncome,
		PendingPayments: p.PendingPayments,
		NetExposure:     p.NetExposure(),
		RiskLevel:       string(p.RiskLevel),
		RiskDescription: p.RiskLevel.Description(),
		CurrentRate:     p.CurrentRate,
		RateTimestamp:   p.RateTimestamp,
		LastUpdated:     p.LastUpdated,
	}
}

// ToListPositionResponse converts a slice of positions to a slice of PositionResponse DTOs.
func ToListPositionResponse(positions []domain.CurrencyPosition) []PositionResponse {
	responses := make([]PositionResponse, len(positions))
	for i := range positions {
		responses[i] = ToPositionResponse(&positions[i])
	}
	return responses
}
