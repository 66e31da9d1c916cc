// Package service implements the core business logic: quote composition and
// transfer recording.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"remitsvc/internal/rates"
)

// Quote is a computed snapshot of rate, fee, and delivery estimate for a
// specific amount and currency pair. Immutable once composed; recomputed on
// every input change and discarded after submission.
type Quote struct {
	Amount           decimal.Decimal
	FromCurrency     string
	ToCurrency       string
	Rate             decimal.Decimal
	ConvertedAmount  decimal.Decimal
	Fee              decimal.Decimal
	TotalAmount      decimal.Decimal
	DeliveryEstimate string
	Source           rates.Source
	QuotedAt         time.Time
}

// QuoteServiceInterface defines the operations available for quoting.
type QuoteServiceInterface interface {
	Quote(ctx context.Context, amount decimal.Decimal, from, to string) (*Quote, error)
	Currencies() []rates.Currency
	ReferenceRates() []rates.PairRate
}

// QuoteService composes quotes from the rate resolver, fee calculator, and
// delivery estimator.
type QuoteService struct {
	resolver  *rates.Resolver
	ref       *rates.ReferenceTable
	validator Validator
	log       *zap.SugaredLogger
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(resolver *rates.Resolver, ref *rates.ReferenceTable, validator Validator, logger *zap.SugaredLogger) *QuoteService {
	return &QuoteService{
		resolver:  resolver,
		ref:       ref,
		validator: validator,
		log:       logger,
	}
}

var _ QuoteServiceInterface = (*QuoteService)(nil)

// Quote computes a quote for sending amount units of from-currency to a
// to-currency recipient. Rate resolution never fails; a degraded lookup is
// reported through Source, which callers must treat as advisory only.
func (s *QuoteService) Quote(ctx context.Context, amount decimal.Decimal, from, to string) (*Quote, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}
	if vErr := s.validatePair(from, to); vErr != nil {
		return nil, vErr
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	res := s.resolver.Resolve(ctx, from, to)

	// Standard half-up rounding to 2 decimal places. Zero-decimal
	// currencies such as JPY are not special-cased.
	converted := amount.Mul(res.Rate).Round(2)
	fee := ComputeFee(amount)

	return &Quote{
		Amount:           amount,
		FromCurrency:     from,
		ToCurrency:       to,
		Rate:             res.Rate,
		ConvertedAmount:  converted,
		Fee:              fee,
		TotalAmount:      amount.Add(fee),
		DeliveryEstimate: s.ref.Delivery(from, to),
		Source:           res.Source,
		QuotedAt:         time.Now().UTC(),
	}, nil
}

// Currencies returns the supported currency metadata.
func (s *QuoteService) Currencies() []rates.Currency {
	return s.ref.Currencies()
}

// ReferenceRates returns the static reference rate entries.
func (s *QuoteService) ReferenceRates() []rates.PairRate {
	return s.ref.Pairs()
}

func (s *QuoteService) validatePair(from, to string) error {
	if err := s.validator.Validate(from); err != nil {
		return err
	}
	err := s.validator.Validate(to)
	return err
}
