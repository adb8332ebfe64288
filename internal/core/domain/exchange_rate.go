package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a single immutable quote for a currency pair. Quotes for the same pair form a
// time series; the latest one is the one with the greatest Timestamp.
type ExchangeRate struct {
	ExchangeRateID  int64            `json:"id"`
	CurrencyPair    string           `json:"currencyPair"` // e.g. "EURUSD"
	Rate            decimal.Decimal  `json:"rate"`
	Bid             *decimal.Decimal `json:"bid,omitempty"`
	Ask             *decimal.Decimal `json:"ask,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
	Source          string           `json:"source"`
	VolatilityIndex *decimal.Decimal `json:"volatilityIndex,omitempty"`
}

// Spread returns ask - bid, or nil when either side is missing.
func (r ExchangeRate) Spread() *decimal.Decimal {
	if r.Bid == nil || r.Ask == nil {
		return nil
	}
	s := r.Ask.Sub(*r.Bid)
	return &s
}
