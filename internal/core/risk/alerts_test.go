package risk_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendation_DependsOnSignOnly(t *testing.T) {
	reduce := "Consider reducing EUR position by converting to other currencies"
	acquire := "Consider acquiring more EUR to cover upcoming payments"

	assert.Equal(t, reduce, risk.Recommendation("EUR", d("0.0001")))
	assert.Equal(t, reduce, risk.Recommendation("EUR", d("99000000")))
	assert.Equal(t, acquire, risk.Recommendation("EUR", d("0")))
	assert.Equal(t, acquire, risk.Recommendation("EUR", d("-0.0001")))
	assert.Equal(t, acquire, risk.Recommendation("EUR", d("-99000000")))
}

func TestNewHighRiskAlert(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	th := risk.DefaultThresholds()
	p := domain.CurrencyPosition{Currency: "CNY", Balance: d("2000000"), PendingIncome: d("100000"), PendingPayments: d("300000")}
	net := p.NetExposure()

	alert := risk.NewHighRiskAlert(p, net, th, risk.AlertStamp{Now: now, TTL: time.Hour})

	assert.NotEmpty(t, alert.AlertID)
	assert.Equal(t, domain.AlertHigh, alert.Level)
	assert.Equal(t, risk.TriggerHighRisk, alert.TriggeredBy)
	assert.Equal(t, "CNY", alert.Currency)
	assert.Equal(t, "High risk position in CNY: 2000000.0000", alert.Message)
	assert.Equal(t, "Consider reducing CNY position by converting to other currencies", alert.Recommendation)
	require.NotNil(t, alert.ThresholdValue)
	assert.True(t, th.High.Equal(*alert.ThresholdValue))
	require.NotNil(t, alert.ActualValue)
	assert.True(t, d("1800000").Equal(*alert.ActualValue))
	assert.Equal(t, domain.AlertActive, alert.Status)
	assert.Nil(t, alert.ResolvedAt)
	assert.Equal(t, now, alert.Timestamp)
	require.NotNil(t, alert.ExpiresAt)
	assert.Equal(t, now.Add(time.Hour), *alert.ExpiresAt)
	assert.NoError(t, alert.Validate())
}

func TestNewLowBalanceAlert(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	th := risk.DefaultThresholds()
	p := domain.CurrencyPosition{Currency: "CHF", Balance: d("10000"), PendingPayments: d("40000")}
	net := p.NetExposure()

	alert := risk.NewLowBalanceAlert(p, net, th, risk.AlertStamp{Now: now})

	assert.Equal(t, domain.AlertMedium, alert.Level)
	assert.Equal(t, risk.TriggerLowBalance, alert.TriggeredBy)
	assert.Equal(t, "Low balance alert for CHF: Current net position -30000.0000", alert.Message)
	assert.Equal(t, "Consider acquiring more CHF to cover upcoming payments", alert.Recommendation)
	assert.True(t, d("50000").Equal(*alert.ThresholdValue))
	assert.True(t, d("-30000").Equal(*alert.ActualValue))
	assert.Nil(t, alert.ExpiresAt)
	assert.Equal(t, domain.AlertActive, alert.Status)
}

func TestAlertIDsAreUnique(t *testing.T) {
	p := domain.CurrencyPosition{Currency: "EUR", Balance: d("10")}
	stamp := risk.AlertStamp{Now: time.Now()}
	a := risk.NewLowBalanceAlert(p, p.NetExposure(), risk.DefaultThresholds(), stamp)
	b := risk.NewLowBalanceAlert(p, p.NetExposure(), risk.DefaultThresholds(), stamp)
	assert.NotEqual(t, a.AlertID, b.AlertID)
}
