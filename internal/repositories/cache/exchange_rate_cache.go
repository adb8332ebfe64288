// Package cache holds Redis-backed read-through decorators for the repositories.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_risk_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/fx_risk_dashboard/internal/middleware"
	"github.com/SscSPs/fx_risk_dashboard/internal/platform/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

const latestRateKeyPrefix = "fxrisk:rate:latest:"

// storeRetries bounds optimistic-lock retries when a cached quote is replaced.
const storeRetries = 3

// ExchangeRateCache caches the latest quote per pair in Redis. Any cache failure falls back to
// the wrapped repository; a cache problem never produces a default rate.
//
// Cached values only move forward: a write replaces the cached quote only when it is newer by
// (timestamp, id), the same order the store uses for "latest".
type ExchangeRateCache struct {
	next   portsrepo.ExchangeRateRepositoryFacade
	client redis.UniversalClient
	ttl    time.Duration
}

// NewExchangeRateCache wraps next with a latest-rate cache.
func NewExchangeRateCache(next portsrepo.ExchangeRateRepositoryFacade, client redis.UniversalClient, ttl time.Duration) *ExchangeRateCache {
	return &ExchangeRateCache{next: next, client: client, ttl: ttl}
}

// FindLatestRate serves the pair's latest quote from Redis, loading it from the store on a miss.
func (c *ExchangeRateCache) FindLatestRate(ctx context.Context, currencyPair string) (*domain.ExchangeRate, error) {
	key := latestRateKey(currencyPair)
	logger := middleware.GetLoggerFromCtx(ctx)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		rate, decodeErr := decodeRate(raw)
		if decodeErr == nil {
			metrics.RateCacheRequests.WithLabelValues("hit").Inc()
			return rate, nil
		}
		metrics.RateCacheRequests.WithLabelValues("error").Inc()
		logger.Warn("Discarding undecodable cached rate", slog.String("key", key), slog.String("error", decodeErr.Error()))
	case errors.Is(err, redis.Nil):
		metrics.RateCacheRequests.WithLabelValues("miss").Inc()
	default:
		metrics.RateCacheRequests.WithLabelValues("error").Inc()
		logger.Warn("Rate cache read failed, using store", slog.String("key", key), slog.String("error", err.Error()))
	}

	rate, err := c.next.FindLatestRate(ctx, currencyPair)
	if err != nil {
		return nil, err
	}

	// TxFailedErr means a concurrent save touched the key first.
	if err := c.storeIfNewer(ctx, key, rate); err != nil && !errors.Is(err, redis.TxFailedErr) {
		logger.Warn("Rate cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return rate, nil
}

// FindRatesInRange is not cached.
func (c *ExchangeRateCache) FindRatesInRange(ctx context.Context, currencyPair string, start, end time.Time) ([]domain.ExchangeRate, error) {
	return c.next.FindRatesInRange(ctx, currencyPair, start, end)
}

// SaveRate stores the quote and then refreshes the pair's cached latest value from the store.
// A backfilled quote older than the cached one leaves the cache untouched. When the refresh
// fails the key is evicted instead.
func (c *ExchangeRateCache) SaveRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	saved, err := c.next.SaveRate(ctx, rate)
	if err != nil {
		return nil, err
	}

	key := latestRateKey(saved.CurrencyPair)
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := c.refresh(ctx, key, saved.CurrencyPair); err != nil {
		logger.Warn("Rate cache refresh failed, evicting", slog.String("key", key), slog.String("error", err.Error()))
		if err := c.client.Del(ctx, key).Err(); err != nil {
			logger.Warn("Rate cache eviction failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return saved, nil
}

func (c *ExchangeRateCache) refresh(ctx context.Context, key, pair string) error {
	latest, err := c.next.FindLatestRate(ctx, pair)
	if err != nil {
		return err
	}
	for i := 0; i < storeRetries; i++ {
		err = c.storeIfNewer(ctx, key, latest)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// storeIfNewer writes rate under key unless the cached quote is the same or newer.
// It returns redis.TxFailedErr when the key changed between the read and the write.
func (c *ExchangeRateCache) storeIfNewer(ctx context.Context, key string, rate *domain.ExchangeRate) error {
	encoded, err := encodeRate(rate)
	if err != nil {
		return fmt.Errorf("encode rate: %w", err)
	}

	return c.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			if cached, decodeErr := decodeRate(raw); decodeErr == nil && !supersedes(rate, cached) {
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, c.ttl)
			return nil
		})
		return err
	}, key)
}

// supersedes reports whether candidate comes after cached in (timestamp, id) order.
func supersedes(candidate, cached *domain.ExchangeRate) bool {
	if !candidate.Timestamp.Equal(cached.Timestamp) {
		return candidate.Timestamp.After(cached.Timestamp)
	}
	return candidate.ExchangeRateID > cached.ExchangeRateID
}

func latestRateKey(pair string) string {
	return latestRateKeyPrefix + pair
}

// cachedRate keeps decimals as strings so the encoding is exact.
type cachedRate struct {
	ID              int64     `msgpack:"id"`
	Pair            string    `msgpack:"pair"`
	Rate            string    `msgpack:"rate"`
	Bid             *string   `msgpack:"bid,omitempty"`
	Ask             *string   `msgpack:"ask,omitempty"`
	Timestamp       time.Time `msgpack:"ts"`
	Source          string    `msgpack:"src"`
	VolatilityIndex *string   `msgpack:"vol,omitempty"`
}

func encodeRate(r *domain.ExchangeRate) ([]byte, error) {
	return msgpack.Marshal(cachedRate{
		ID:              r.ExchangeRateID,
		Pair:            r.CurrencyPair,
		Rate:            r.Rate.String(),
		Bid:             decimalString(r.Bid),
		Ask:             decimalString(r.Ask),
		Timestamp:       r.Timestamp,
		Source:          r.Source,
		VolatilityIndex: decimalString(r.VolatilityIndex),
	})
}

func decodeRate(raw []byte) (*domain.ExchangeRate, error) {
	var c cachedRate
	if err := msgpack.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	rate, err := decimal.NewFromString(c.Rate)
	if err != nil {
		return nil, fmt.Errorf("bad cached rate %q: %w", c.Rate, err)
	}
	out := &domain.ExchangeRate{
		ExchangeRateID: c.ID,
		CurrencyPair:   c.Pair,
		Rate:           rate,
		Timestamp:      c.Timestamp,
		Source:         c.Source,
	}
	if out.Bid, err = parseOptional(c.Bid); err != nil {
		return nil, err
	}
	if out.Ask, err = parseOptional(c.Ask); err != nil {
		return nil, err
	}
	if out.VolatilityIndex, err = parseOptional(c.VolatilityIndex); err != nil {
		return nil, err
	}
	return out, nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseOptional(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("bad cached decimal %q: %w", *s, err)
	}
	return &d, nil
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateCache)(nil)
