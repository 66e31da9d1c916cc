//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remitsvc/internal/rates"
)

func TestCachedRateSource_RealRedis(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"rate": 0.9134}`)
	}))
	t.Cleanup(srv.Close)

	remote := rates.NewRemoteSource(srv.URL, 5)
	cached := rates.NewCachedRateSource(remote, testRDB, 5*time.Minute, "rate_api")

	// First resolution hits the upstream API and populates the cache.
	rate, _, err := cached.GetRate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.9134")), "rate: %s", rate)
	assert.Equal(t, int32(1), calls.Load())

	// Second resolution is served from Redis.
	rate, _, err = cached.GetRate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.9134")), "rate: %s", rate)
	assert.Equal(t, int32(1), calls.Load())

	// A different pair misses the cache.
	_, _, err = cached.GetRate(ctx, "GBP", "USD")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCachedRateSource_UpstreamFailureNotCached(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	remote := rates.NewRemoteSource(srv.URL, 5)
	cached := rates.NewCachedRateSource(remote, testRDB, 5*time.Minute, "rate_api")

	_, _, err := cached.GetRate(ctx, "USD", "EUR")
	require.Error(t, err)

	// Errors must not poison the cache: the next call goes upstream again.
	_, _, err = cached.GetRate(ctx, "USD", "EUR")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
