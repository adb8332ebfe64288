package utils

import (
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount at the fixed amount scale.
// Example: 750000 returns "750000.0000"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(domain.AmountScale)
}

// HasAtMostScale reports whether amount has no more than scale fractional digits.
func HasAtMostScale(amount decimal.Decimal, scale int32) bool {
	return amount.Equal(amount.Truncate(scale))
}
