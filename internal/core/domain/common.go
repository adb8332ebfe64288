package domain

import "time"

// AmountScale is the number of fractional digits kept for monetary amounts.
const AmountScale int32 = 4

// RateScale and VolatilityScale are the fractional digits stored for quotes.
const (
	RateScale       int32 = 8
	VolatilityScale int32 = 4
)

// AuditFields holds the write timestamp stamped by the store on every upsert.
type AuditFields struct {
	LastUpdated time.Time `json:"lastUpdated"`
}
