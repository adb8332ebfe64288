package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AlertLevel is the severity of a risk alert. It shares values with RiskLevel but is a separate type.
type AlertLevel string

const (
	AlertLow    AlertLevel = "LOW"
	AlertMedium AlertLevel = "MEDIUM"
	AlertHigh   AlertLevel = "HIGH"
)

// AlertStatus is the lifecycle state of a risk alert.
type AlertStatus string

const (
	AlertActive       AlertStatus = "ACTIVE"
	AlertAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertResolved     AlertStatus = "RESOLVED"
)

// RiskAlert is a derived, actionable notice about a position breaching a risk rule.
type RiskAlert struct {
	AlertID        string           `json:"id"`
	Level          AlertLevel       `json:"level"`
	Message        string           `json:"message"`
	Recommendation string           `json:"recommendation"`
	Currency       string           `json:"currency"`
	TriggeredBy    string           `json:"triggeredBy"`
	ThresholdValue *decimal.Decimal `json:"thresholdValue,omitempty"`
	ActualValue    *decimal.Decimal `json:"actualValue,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
	ExpiresAt      *time.Time       `json:"expiresAt,omitempty"`
	ResolvedAt     *time.Time       `json:"resolvedAt"`
	Status         AlertStatus      `json:"status"`
}

// IsExpired reports whether now is past ExpiresAt. Status is not consulted.
func (a RiskAlert) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}

// IsResolved reports whether the alert has reached the terminal state.
func (a RiskAlert) IsResolved() bool {
	return a.ResolvedAt != nil || a.Status == AlertResolved
}

// Acknowledge moves an ACTIVE alert to ACKNOWLEDGED. Any other state is left unchanged.
func (a *RiskAlert) Acknowledge() {
	if a.Status == AlertActive {
		a.Status = AlertAcknowledged
	}
}

// Resolve moves a non-terminal alert to RESOLVED and stamps ResolvedAt.
func (a *RiskAlert) Resolve(at time.Time) {
	if a.IsResolved() {
		return
	}
	a.Status = AlertResolved
	a.ResolvedAt = &at
}

// Validate checks the fields every alert must carry.
func (a RiskAlert) Validate() error {
	if strings.TrimSpace(a.Message) == "" {
		return errors.New("message cannot be empty")
	}
	if strings.TrimSpace(a.Currency) == "" {
		return errors.New("currency cannot be empty")
	}
	if a.Level == "" {
		return errors.New("alert level must be specified")
	}
	return nil
}
