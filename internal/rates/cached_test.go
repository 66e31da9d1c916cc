package rates

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCachedRateSource_GetRate(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	from := "USD"
	to := "EUR"
	rate := decimal.RequireFromString("0.9134")
	now := time.Now().Truncate(time.Second).UTC()
	ttl := 10 * time.Second

	t.Run("cache miss then hit", func(t *testing.T) {
		mr.FlushAll()
		src := new(MockSource)
		src.On("GetRate", mock.Anything, from, to).Return(rate, now, nil).Once()

		cached := NewCachedRateSource(src, rdb, ttl, "test_source")

		// First call - cache miss.
		gotRate, gotTime, err := cached.GetRate(context.Background(), from, to)
		assert.NoError(t, err)
		assert.True(t, gotRate.Equal(rate))
		assert.True(t, gotTime.Equal(now))
		src.AssertExpectations(t)

		// Second call - cache hit (the underlying source must not be called again).
		gotRate2, gotTime2, err := cached.GetRate(context.Background(), from, to)
		assert.NoError(t, err)
		assert.True(t, gotRate2.Equal(rate))
		assert.True(t, gotTime2.Equal(now))
	})

	t.Run("source error is not cached", func(t *testing.T) {
		mr.FlushAll()
		src := new(MockSource)
		src.On("GetRate", mock.Anything, from, to).
			Return(decimal.Decimal{}, time.Time{}, assert.AnError).Twice()

		cached := NewCachedRateSource(src, rdb, ttl, "test_source")

		_, _, err := cached.GetRate(context.Background(), from, to)
		assert.Error(t, err)

		_, _, err = cached.GetRate(context.Background(), from, to)
		assert.Error(t, err)
		src.AssertExpectations(t)
	})

	t.Run("entry expires after TTL", func(t *testing.T) {
		mr.FlushAll()
		src := new(MockSource)
		src.On("GetRate", mock.Anything, from, to).Return(rate, now, nil).Twice()

		cached := NewCachedRateSource(src, rdb, ttl, "test_source")

		_, _, err := cached.GetRate(context.Background(), from, to)
		assert.NoError(t, err)

		mr.FastForward(ttl + time.Second)

		_, _, err = cached.GetRate(context.Background(), from, to)
		assert.NoError(t, err)
		src.AssertExpectations(t)
	})

	t.Run("nil cache delegates to source", func(t *testing.T) {
		src := new(MockSource)
		src.On("GetRate", mock.Anything, from, to).Return(rate, now, nil).Once()

		cached := NewCachedRateSource(src, nil, ttl, "test_source")

		gotRate, _, err := cached.GetRate(context.Background(), from, to)
		assert.NoError(t, err)
		assert.True(t, gotRate.Equal(rate))
		src.AssertExpectations(t)
	})
}
