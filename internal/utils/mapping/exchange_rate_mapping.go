package mapping

import (
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_risk_dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:  d.ExchangeRateID,
		CurrencyPair:    d.CurrencyPair,
		Rate:            d.Rate,
		Bid:             toNullDecimal(d.Bid),
		Ask:             toNullDecimal(d.Ask),
		QuotedAt:        d.Timestamp,
		Source:          d.Source,
		VolatilityIndex: toNullDecimal(d.VolatilityIndex),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:  m.ExchangeRateID,
		CurrencyPair:    m.CurrencyPair,
		Rate:            m.Rate,
		Bid:             fromNullDecimal(m.Bid),
		Ask:             fromNullDecimal(m.Ask),
		Timestamp:       m.QuotedAt,
		Source:          m.Source,
		VolatilityIndex: fromNullDecimal(m.VolatilityIndex),
	}
}

// ToDomainExchangeRates converts a slice of model rates.
func ToDomainExchangeRates(ms []models.ExchangeRate) []domain.ExchangeRate {
	rates := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		rates[i] = ToDomainExchangeRate(m)
	}
	return rates
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
