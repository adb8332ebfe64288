package risk

import (
	"sort"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
)

// QuoteConvention says which side of the USD pair a currency sits on.
type QuoteConvention int

const (
	// QuotedAgainstUSD pairs are written <CCY>USD (e.g. EURUSD): the rate is USD per unit of CCY.
	QuotedAgainstUSD QuoteConvention = iota + 1
	// USDQuoted pairs are written USD<CCY> (e.g. USDJPY): the rate is CCY per USD.
	USDQuoted
)

// DefaultBaseQuotedCurrencies are the currencies conventionally quoted as <CCY>USD.
var DefaultBaseQuotedCurrencies = []string{"EUR", "GBP"}

// PairConvention maps currencies to their quoting convention. Currencies missing from the table
// are USDQuoted.
type PairConvention struct {
	table map[string]QuoteConvention
}

// NewPairConvention builds a convention where the given currencies are quoted against USD.
func NewPairConvention(baseQuoted []string) PairConvention {
	table := make(map[string]QuoteConvention, len(baseQuoted))
	for _, ccy := range baseQuoted {
		ccy = domain.NormalizeCurrencyCode(ccy)
		if ccy == "" || ccy == domain.BaseCurrency {
			continue
		}
		table[ccy] = QuotedAgainstUSD
	}
	return PairConvention{table: table}
}

// DefaultPairConvention returns the EUR/GBP convention.
func DefaultPairConvention() PairConvention {
	return NewPairConvention(DefaultBaseQuotedCurrencies)
}

// ConventionFor returns the quoting convention of currency.
func (c PairConvention) ConventionFor(currency string) QuoteConvention {
	if conv, ok := c.table[currency]; ok {
		return conv
	}
	return USDQuoted
}

// Pair returns the six-letter pair used to look up currency against USD.
func (c PairConvention) Pair(currency string) string {
	if c.ConventionFor(currency) == QuotedAgainstUSD {
		return currency + domain.BaseCurrency
	}
	return domain.BaseCurrency + currency
}

// BaseQuoted lists the currencies quoted against USD, sorted.
func (c PairConvention) BaseQuoted() []string {
	out := make([]string, 0, len(c.table))
	for ccy, conv := range c.table {
		if conv == QuotedAgainstUSD {
			out = append(out, ccy)
		}
	}
	sort.Strings(out)
	return out
}
