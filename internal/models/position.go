package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPosition is a row of the currency_positions table.
type CurrencyPosition struct {
	PositionID      int64           `db:"id"`
	Currency        string          `db:"currency"`
	Balance         decimal.Decimal `db:"balance"`
	PendingIncome   decimal.Decimal `db:"pending_income"`
	PendingPayments decimal.Decimal `db:"pending_payments"`
	RiskLevel       string          `db:"risk_level"`
	LastUpdated     time.Time       `db:"last_updated"`
}
