package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Source tags where a resolved rate came from. It is advisory only: callers
// must not branch business logic on it, just surface confidence to the user.
type Source string

// Source values for rate resolution.
const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Resolution is the outcome of a rate lookup. Rate is always positive; a
// failed live lookup is expressed as Source=fallback, never as an error.
type Resolution struct {
	Rate      decimal.Decimal
	Source    Source
	FetchedAt time.Time
}

// Resolver resolves exchange rates, preferring the live source and degrading
// to the reference table on any failure.
type Resolver struct {
	source RateSource
	ref    *ReferenceTable
	log    *zap.SugaredLogger
}

// NewResolver creates a new Resolver. The live source may be nil, in which
// case every resolution for distinct currencies uses the reference table.
func NewResolver(source RateSource, ref *ReferenceTable, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{
		source: source,
		ref:    ref,
		log:    logger,
	}
}

// Resolve returns a rate for the pair. Identity pairs short-circuit to
// (1, live) with no lookup. Live failures are swallowed into the fallback
// path; the worst case is a neutral rate of 1 for an unknown pair.
func (r *Resolver) Resolve(ctx context.Context, from, to string) Resolution {
	if from == to {
		return Resolution{
			Rate:      decimal.NewFromInt(1),
			Source:    SourceLive,
			FetchedAt: time.Now().UTC(),
		}
	}

	if r.source != nil {
		rate, fetchedAt, err := r.source.GetRate(ctx, from, to)
		if err == nil {
			return Resolution{Rate: rate, Source: SourceLive, FetchedAt: fetchedAt}
		}
		r.log.Warnw("Live rate lookup failed, using reference rate",
			"from", from, "to", to, "error", err)
	}

	rate, ok := r.ref.Rate(from, to)
	if !ok {
		r.log.Warnw("No reference rate for pair, defaulting to 1",
			"from", from, "to", to)
		rate = decimal.NewFromInt(1)
	}

	return Resolution{
		Rate:      rate,
		Source:    SourceFallback,
		FetchedAt: time.Now().UTC(),
	}
}
