package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateSource defines an interface for fetching exchange rates from a live source.
type RateSource interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, time.Time, error)
}
