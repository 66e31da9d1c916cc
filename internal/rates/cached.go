package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// CachedRateSource wraps a RateSource with Redis caching.
type CachedRateSource struct {
	source     RateSource
	cache      *redis.Client
	ttl        time.Duration
	sourceName string
}

// NewCachedRateSource creates a new CachedRateSource.
func NewCachedRateSource(source RateSource, cache *redis.Client, ttl time.Duration, sourceName string) *CachedRateSource {
	return &CachedRateSource{
		source:     source,
		cache:      cache,
		ttl:        ttl,
		sourceName: sourceName,
	}
}

func (s *CachedRateSource) cacheKey(from, to string) string {
	return fmt.Sprintf("rate_cache:%s:{%s:%s}", s.sourceName, from, to)
}

// GetRate attempts to fetch the rate from cache before calling the underlying source.
// Cache failures fall through to the source; source errors are not cached.
func (s *CachedRateSource) GetRate(ctx context.Context, from, to string) (decimal.Decimal, time.Time, error) {
	if s.cache == nil {
		return s.source.GetRate(ctx, from, to)
	}

	key := s.cacheKey(from, to)

	vals, err := s.cache.HMGet(ctx, key, "rate", "fetched_at").Result()
	if err == nil && len(vals) == 2 && vals[0] != nil && vals[1] != nil {
		rateStr, ok1 := vals[0].(string)
		tsStr, ok2 := vals[1].(string)
		if ok1 && ok2 {
			rate, err1 := decimal.NewFromString(rateStr)
			ts, err2 := time.Parse(time.RFC3339, tsStr)
			if err1 == nil && err2 == nil {
				return rate, ts, nil
			}
		}
	}

	rate, ts, err := s.source.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, err
	}

	pipe := s.cache.Pipeline()
	pipe.HSet(ctx, key, "rate", rate.String(), "fetched_at", ts.Format(time.RFC3339))
	pipe.Expire(ctx, key, s.ttl)
	_, _ = pipe.Exec(ctx)

	return rate, ts, nil
}

var _ RateSource = (*CachedRateSource)(nil)
