package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RiskLevel is the derived risk tier of a currency position.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Description returns the human readable label for the tier.
func (r RiskLevel) Description() string {
	switch r {
	case RiskLow:
		return "Low risk position"
	case RiskMedium:
		return "Medium risk position"
	case RiskHigh:
		return "High risk position"
	default:
		return "Unknown risk level"
	}
}

// Severity orders tiers: LOW=1, MEDIUM=2, HIGH=3, anything else 0.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

// IsValid reports whether r is one of the known tiers.
func (r RiskLevel) IsValid() bool {
	return r.Severity() > 0
}

// ParseRiskLevel converts an upper-case tier name to a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown risk level %q", s)
	}
	return r, nil
}

// CurrencyPosition is the organization's cash position in a single currency.
type CurrencyPosition struct {
	PositionID      int64           `json:"id"`
	Currency        string          `json:"currency"` // identity key, e.g. "EUR"
	Balance         decimal.Decimal `json:"balance"`
	PendingIncome   decimal.Decimal `json:"pendingIncome"`
	PendingPayments decimal.Decimal `json:"pendingPayments"`
	// RiskLevel is recomputed on every write; it is never taken from input.
	RiskLevel RiskLevel `json:"riskLevel"`
	// CurrentRate and RateTimestamp are filled at read time and are not persisted authoritatively.
	CurrentRate   *decimal.Decimal `json:"currentRate,omitempty"`
	RateTimestamp *time.Time       `json:"rateTimestamp,omitempty"`
	AuditFields
}

// NetExposure returns balance + pendingIncome - pendingPayments.
func (p CurrencyPosition) NetExposure() decimal.Decimal {
	return p.Balance.Add(p.PendingIncome).Sub(p.PendingPayments)
}

// Validate checks the invariants a stored position must satisfy before it can be evaluated.
func (p CurrencyPosition) Validate() error {
	if !IsCurrencyCode(p.Currency) {
		return fmt.Errorf("invalid currency code %q", p.Currency)
	}
	if p.RiskLevel != "" && !p.RiskLevel.IsValid() {
		return fmt.Errorf("position %s has unknown risk level %q", p.Currency, p.RiskLevel)
	}
	return nil
}
