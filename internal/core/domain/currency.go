package domain

import "strings"

// BaseCurrency is the currency every position is measured against.
const BaseCurrency = "USD"

// NormalizeCurrencyCode upper-cases and trims a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCurrencyCode reports whether code is exactly three ASCII upper-case letters.
func IsCurrencyCode(code string) bool {
	return isUpperAlpha(code, 3)
}

// IsCurrencyPair reports whether pair is two concatenated currency codes, e.g. "EURUSD".
func IsCurrencyPair(pair string) bool {
	return isUpperAlpha(pair, 6)
}

func isUpperAlpha(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
