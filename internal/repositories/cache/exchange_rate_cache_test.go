package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateRepo struct {
	latest    map[string]*domain.ExchangeRate
	findCalls int
	saved     []domain.ExchangeRate
}

func (s *stubRateRepo) FindLatestRate(_ context.Context, pair string) (*domain.ExchangeRate, error) {
	s.findCalls++
	if r, ok := s.latest[pair]; ok {
		return r, nil
	}
	return nil, apperrors.NewNotFoundError(pair)
}

func (s *stubRateRepo) FindRatesInRange(_ context.Context, _ string, _, _ time.Time) ([]domain.ExchangeRate, error) {
	return nil, nil
}

func (s *stubRateRepo) SaveRate(_ context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	rate.ExchangeRateID = int64(100 + len(s.saved))
	s.saved = append(s.saved, rate)
	if s.latest == nil {
		s.latest = map[string]*domain.ExchangeRate{}
	}
	if cur, ok := s.latest[rate.CurrencyPair]; !ok || supersedes(&rate, cur) {
		stored := rate
		s.latest[rate.CurrencyPair] = &stored
	}
	return &rate, nil
}

// unreachableRedis fails every command immediately with a dial error.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func quote(id int64, rate string, ts time.Time) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ExchangeRateID: id,
		CurrencyPair:   "EURUSD",
		Rate:           decimal.RequireFromString(rate),
		Timestamp:      ts,
		Source:         "MANUAL",
	}
}

func TestExchangeRateCache_SecondReadIsServedFromRedis(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubRateRepo{latest: map[string]*domain.ExchangeRate{"EURUSD": quote(1, "1.0850", ts)}}
	c := NewExchangeRateCache(repo, newTestRedis(t), time.Minute)
	ctx := context.Background()

	_, err := c.FindLatestRate(ctx, "EURUSD")
	require.NoError(t, err)
	rate, err := c.FindLatestRate(ctx, "EURUSD")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, "1.085", rate.Rate.String())
	assert.Equal(t, int64(1), rate.ExchangeRateID)
}

func TestExchangeRateCache_LateFillDoesNotOverwriteNewerSave(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	old := quote(1, "1.0850", ts)
	repo := &stubRateRepo{latest: map[string]*domain.ExchangeRate{"EURUSD": old}}
	c := NewExchangeRateCache(repo, newTestRedis(t), time.Minute)
	ctx := context.Background()

	_, err := c.SaveRate(ctx, *quote(0, "1.0900", ts.Add(time.Minute)))
	require.NoError(t, err)

	// A reader that loaded the old quote before the save finishes its cache write afterwards.
	require.NoError(t, c.storeIfNewer(ctx, latestRateKey("EURUSD"), old))

	rate, err := c.FindLatestRate(ctx, "EURUSD")
	require.NoError(t, err)
	assert.Equal(t, "1.09", rate.Rate.String())
	assert.Equal(t, 1, repo.findCalls)
}

func TestExchangeRateCache_BackfillKeepsNewerLatest(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubRateRepo{latest: map[string]*domain.ExchangeRate{"EURUSD": quote(1, "1.0900", ts)}}
	c := NewExchangeRateCache(repo, newTestRedis(t), time.Minute)
	ctx := context.Background()

	_, err := c.FindLatestRate(ctx, "EURUSD")
	require.NoError(t, err)
	_, err = c.SaveRate(ctx, *quote(0, "1.0700", ts.Add(-time.Hour)))
	require.NoError(t, err)

	rate, err := c.FindLatestRate(ctx, "EURUSD")
	require.NoError(t, err)
	assert.Equal(t, "1.09", rate.Rate.String())
}

func TestExchangeRateCache_SaveRefreshesCache(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubRateRepo{}
	c := NewExchangeRateCache(repo, newTestRedis(t), time.Minute)
	ctx := context.Background()

	saved, err := c.SaveRate(ctx, *quote(0, "1.0850", ts))
	require.NoError(t, err)

	rate, err := c.FindLatestRate(ctx, "EURUSD")
	require.NoError(t, err)
	assert.Equal(t, saved.ExchangeRateID, rate.ExchangeRateID)
	assert.Equal(t, 1, repo.findCalls)
}

func TestSupersedes(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, supersedes(quote(1, "1", ts.Add(time.Second)), quote(2, "1", ts)))
	assert.False(t, supersedes(quote(2, "1", ts), quote(1, "1", ts.Add(time.Second))))
	assert.True(t, supersedes(quote(2, "1", ts), quote(1, "1", ts)))
	assert.False(t, supersedes(quote(1, "1", ts), quote(1, "1", ts)))
}

func TestExchangeRateCache_FallsBackToStoreWhenRedisIsDown(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	stored := &domain.ExchangeRate{CurrencyPair: "EURUSD", Rate: decimal.RequireFromString("1.0850")}
	repo := &stubRateRepo{latest: map[string]*domain.ExchangeRate{"EURUSD": stored}}
	c := NewExchangeRateCache(repo, client, time.Minute)

	rate, err := c.FindLatestRate(context.Background(), "EURUSD")

	require.NoError(t, err)
	assert.Same(t, stored, rate)
	assert.Equal(t, 1, repo.findCalls)
}

func TestExchangeRateCache_StoreNotFoundPassesThrough(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	c := NewExchangeRateCache(&stubRateRepo{}, client, time.Minute)

	_, err := c.FindLatestRate(context.Background(), "USDCHF")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExchangeRateCache_SaveSucceedsWhenEvictionFails(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	repo := &stubRateRepo{}
	c := NewExchangeRateCache(repo, client, time.Minute)

	saved, err := c.SaveRate(context.Background(), domain.ExchangeRate{CurrencyPair: "GBPUSD", Rate: decimal.RequireFromString("1.2650")})

	require.NoError(t, err)
	assert.Equal(t, "GBPUSD", saved.CurrencyPair)
	assert.Len(t, repo.saved, 1)
}

func TestRateEncoding_KeepsDecimalsExact(t *testing.T) {
	bid := decimal.RequireFromString("150.48000001")
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := &domain.ExchangeRate{
		ExchangeRateID: 42,
		CurrencyPair:   "USDJPY",
		Rate:           decimal.RequireFromString("150.50"),
		Bid:            &bid,
		Timestamp:      ts,
		Source:         "MOCK_DATA",
	}

	raw, err := encodeRate(in)
	require.NoError(t, err)
	out, err := decodeRate(raw)
	require.NoError(t, err)

	assert.True(t, out.Rate.Equal(in.Rate))
	require.NotNil(t, out.Bid)
	assert.Equal(t, "150.48000001", out.Bid.String())
	assert.Nil(t, out.Ask)
	assert.True(t, ts.Equal(out.Timestamp))
	assert.Equal(t, int64(42), out.ExchangeRateID)
}

func TestDecodeRate_RejectsGarbage(t *testing.T) {
	_, err := decodeRate([]byte("not msgpack"))
	assert.Error(t, err)
}
