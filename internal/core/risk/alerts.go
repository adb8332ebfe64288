package risk

import (
	"fmt"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rule identifiers recorded in RiskAlert.TriggeredBy.
const (
	TriggerHighRisk   = "HIGH_RISK_POSITION"
	TriggerLowBalance = "LOW_BALANCE"
)

// AlertStamp carries the creation time and lifetime shared by alerts of one scan.
type AlertStamp struct {
	Now time.Time
	TTL time.Duration // zero or negative leaves ExpiresAt unset
}

// Recommendation depends only on the sign of net: long positions are reduced, flat or short
// positions are topped up.
func Recommendation(currency string, net decimal.Decimal) string {
	if net.IsPositive() {
		return fmt.Sprintf("Consider reducing %s position by converting to other currencies", currency)
	}
	return fmt.Sprintf("Consider acquiring more %s to cover upcoming payments", currency)
}

// NewHighRiskAlert builds the alert raised for a position classified HIGH.
func NewHighRiskAlert(p domain.CurrencyPosition, net decimal.Decimal, t Thresholds, stamp AlertStamp) domain.RiskAlert {
	alert := newAlert(p.Currency, net, stamp)
	alert.Level = domain.AlertHigh
	alert.TriggeredBy = TriggerHighRisk
	alert.Message = fmt.Sprintf("High risk position in %s: %s", p.Currency, utils.FormatAmount(p.Balance))
	alert.ThresholdValue = decimalPtr(t.High)
	return alert
}

// NewLowBalanceAlert builds the alert raised when |net| falls below the low-balance floor.
func NewLowBalanceAlert(p domain.CurrencyPosition, net decimal.Decimal, t Thresholds, stamp AlertStamp) domain.RiskAlert {
	alert := newAlert(p.Currency, net, stamp)
	alert.Level = domain.AlertMedium
	alert.TriggeredBy = TriggerLowBalance
	alert.Message = fmt.Sprintf("Low balance alert for %s: Current net position %s", p.Currency, utils.FormatAmount(net))
	alert.ThresholdValue = decimalPtr(t.LowBalance)
	return alert
}

func newAlert(currency string, net decimal.Decimal, stamp AlertStamp) domain.RiskAlert {
	alert := domain.RiskAlert{
		AlertID:        uuid.NewString(),
		Currency:       currency,
		Recommendation: Recommendation(currency, net),
		ActualValue:    decimalPtr(net),
		Timestamp:      stamp.Now,
		Status:         domain.AlertActive,
	}
	if stamp.TTL > 0 {
		expiresAt := stamp.Now.Add(stamp.TTL)
		alert.ExpiresAt = &expiresAt
	}
	return alert
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
