package dto

import (
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AlertResponse defines the structure for API responses containing a risk alert.
type AlertResponse struct {
	ID             string           `json:"id"`
	Level          string           `json:"level"`
	Message        string           `json:"message"`
	Recommendation string           `json:"recommendation"`
	Currency       string           `json:"currency"`
	TriggeredBy    string           `json:"triggeredBy"`
	ThresholdValue *decimal.Decimal `json:"thresholdValue,omitempty"`
	ActualValue    *decimal.Decimal `json:"actualValue,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
	ExpiresAt      *time.Time       `json:"expiresAt,omitempty"`
	ResolvedAt     *time.Time       `json:"resolvedAt"`
	Status         string           `json:"status"`
}

// ToAlertResponse converts a domain.RiskAlert to AlertResponse DTO
func ToAlertResponse(a *domain.RiskAlert) AlertResponse {
	return AlertResponse{
		ID:             a.AlertID,
		Level:          string(a.Level),
		Message:        a.Message,
		Recommendation: a.Recommendation,
		Currency:       a.Currency,
		TriggeredBy:    a.TriggeredBy,
		ThresholdValue: a.ThresholdValue,
		ActualValue:    a.ActualValue,
		Timestamp:      a.Timestamp,
		ExpiresAt:      a.ExpiresAt,
		ResolvedAt:     a.ResolvedAt,
		Status:         string(a.Status),
	}
}

// ToListAlertResponse converts a slice of alerts to a slice of AlertResponse DTOs.
func ToListAlertResponse(alerts []domain.RiskAlert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = ToAlertResponse(&alerts[i])
	}
	return responses
}

// DashboardResponse bundles positions and alerts for the dashboard view.
type DashboardResponse struct {
	Positions   []PositionResponse `json:"positions"`
	Alerts      []AlertResponse    `json:"alerts"`
	LastUpdated time.Time          `json:"lastUpdated"`
}
