package dto

import (
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordExchangeRateRequest defines the structure for recording a new exchange rate quote.
type RecordExchangeRateRequest struct {
	CurrencyPair    string           `json:"currencyPair" binding:"required,currencypair"`
	Rate            *decimal.Decimal `json:"rate" binding:"required"`
	Bid             *decimal.Decimal `json:"bid"`
	Ask             *decimal.Decimal `json:"ask"`
	Timestamp       *time.Time       `json:"timestamp"` // defaults to now
	Source          string           `json:"source" binding:"max=50"`
	VolatilityIndex *decimal.Decimal `json:"volatilityIndex"`
}

// RateHistoryParams holds the RFC 3339 query parameters of the rate history endpoint.
type RateHistoryParams struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID              int64            `json:"id"`
	CurrencyPair    string           `json:"currencyPair"`
	Rate            decimal.Decimal  `json:"rate"`
	Bid             *decimal.Decimal `json:"bid,omitempty"`
	Ask             *decimal.Decimal `json:"ask,omitempty"`
	Spread          *decimal.Decimal `json:"spread,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
	Source          string           `json:"source"`
	VolatilityIndex *decimal.Decimal `json:"volatilityIndex,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:              rate.ExchangeRateID,
		CurrencyPair:    rate.CurrencyPair,
		Rate:            rate.Rate,
		Bid:             rate.Bid,
		Ask:             rate.Ask,
		Spread:          rate.Spread(),
		Timestamp:       rate.Timestamp,
		Source:          rate.Source,
		VolatilityIndex: rate.VolatilityIndex,
	}
}

// ToListExchangeRateResponse converts a slice of rates to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
