package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table.
type ExchangeRate struct {
	ExchangeRateID  int64               `db:"id"`
	CurrencyPair    string              `db:"currency_pair"`
	Rate            decimal.Decimal     `db:"rate"`
	Bid             decimal.NullDecimal `db:"bid"`
	Ask             decimal.NullDecimal `db:"ask"`
	QuotedAt        time.Time           `db:"quoted_at"`
	Source          string              `db:"source"`
	VolatilityIndex decimal.NullDecimal `db:"volatility_index"`
}
