package risk

import (
	"fmt"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Thresholds is the single shared threshold set used for classification and alerting.
type Thresholds struct {
	High       decimal.Decimal // |net| strictly above is HIGH
	Medium     decimal.Decimal // |net| strictly above is MEDIUM
	LowBalance decimal.Decimal // |net| strictly below raises a LOW_BALANCE alert
}

// DefaultThresholds returns 1,000,000 / 500,000 / 50,000.
func DefaultThresholds() Thresholds {
	return Thresholds{
		High:       decimal.NewFromInt(1_000_000),
		Medium:     decimal.NewFromInt(500_000),
		LowBalance: decimal.NewFromInt(50_000),
	}
}

// Validate checks that the thresholds are positive and ordered.
func (t Thresholds) Validate() error {
	if !t.High.IsPositive() || !t.Medium.IsPositive() || !t.LowBalance.IsPositive() {
		return fmt.Errorf("risk thresholds must be positive (high=%s, medium=%s, lowBalance=%s)", t.High, t.Medium, t.LowBalance)
	}
	if t.Medium.GreaterThan(t.High) {
		return fmt.Errorf("medium threshold %s exceeds high threshold %s", t.Medium, t.High)
	}
	return nil
}

// NetExposure computes balance + pendingIncome - pendingPayments.
func NetExposure(balance, pendingIncome, pendingPayments decimal.Decimal) decimal.Decimal {
	return balance.Add(pendingIncome).Sub(pendingPayments)
}

// Classify maps a net exposure to a tier. Comparisons are strict, so |net| equal to a threshold
// stays in the lower tier.
func Classify(net decimal.Decimal, t Thresholds) domain.RiskLevel {
	abs := net.Abs()
	switch {
	case abs.GreaterThan(t.High):
		return domain.RiskHigh
	case abs.GreaterThan(t.Medium):
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// IsLowBalance reports whether |net| is strictly below the low-balance floor.
func IsLowBalance(net decimal.Decimal, t Thresholds) bool {
	return net.Abs().LessThan(t.LowBalance)
}

// Classifier assigns risk tiers to positions.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a Classifier for the given thresholds.
func NewClassifier(t Thresholds) Classifier {
	return Classifier{thresholds: t}
}

// Thresholds returns the configured thresholds.
func (c Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// ClassifyPosition overwrites p.RiskLevel with the tier derived from its amounts.
func (c Classifier) ClassifyPosition(p *domain.CurrencyPosition) {
	p.RiskLevel = Classify(NetExposure(p.Balance, p.PendingIncome, p.PendingPayments), c.thresholds)
}
