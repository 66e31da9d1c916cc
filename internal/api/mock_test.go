package api

import (
	"context"

	"github.com/shopspring/decimal"

	"remitsvc/internal/rates"
	"remitsvc/internal/service"
)

// mockQuoteService implements service.QuoteServiceInterface for testing.
type mockQuoteService struct {
	quoteFunc      func(ctx context.Context, amount decimal.Decimal, from, to string) (*service.Quote, error)
	currenciesFunc func() []rates.Currency
	refRatesFunc   func() []rates.PairRate
}

func (m *mockQuoteService) Quote(ctx context.Context, amount decimal.Decimal, from, to string) (*service.Quote, error) {
	return m.quoteFunc(ctx, amount, from, to)
}

func (m *mockQuoteService) Currencies() []rates.Currency {
	if m.currenciesFunc == nil {
		return nil
	}
	return m.currenciesFunc()
}

func (m *mockQuoteService) ReferenceRates() []rates.PairRate {
	if m.refRatesFunc == nil {
		return nil
	}
	return m.refRatesFunc()
}

// mockTransferService implements service.TransferServiceInterface for testing.
type mockTransferService struct {
	recordFunc func(ctx context.Context, q *service.Quote, senderRef, recipientName, recipientEmail, purpose string) (*service.TransferRecord, error)
	getFunc    func(ctx context.Context, id string) (*service.TransferRecord, error)
	listFunc   func(ctx context.Context, limit int) ([]service.TransferRecord, error)
}

func (m *mockTransferService) Record(ctx context.Context, q *service.Quote, senderRef, recipientName, recipientEmail, purpose string) (*service.TransferRecord, error) {
	return m.recordFunc(ctx, q, senderRef, recipientName, recipientEmail, purpose)
}

func (m *mockTransferService) GetTransfer(ctx context.Context, id string) (*service.TransferRecord, error) {
	return m.getFunc(ctx, id)
}

func (m *mockTransferService) ListTransfers(ctx context.Context, limit int) ([]service.TransferRecord, error) {
	return m.listFunc(ctx, limit)
}
