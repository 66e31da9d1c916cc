package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"remitsvc/internal/repository"
)

// Mock repository
type mockTransferRepo struct {
	insertFunc     func(ctx context.Context, t *repository.Transfer) error
	getByIDFunc    func(ctx context.Context, id string) (*repository.Transfer, error)
	listRecentFunc func(ctx context.Context, limit int) ([]repository.Transfer, error)
}

func (m *mockTransferRepo) Insert(ctx context.Context, t *repository.Transfer) error {
	return m.insertFunc(ctx, t)
}

func (m *mockTransferRepo) GetByID(ctx context.Context, id string) (*repository.Transfer, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTransferRepo) ListRecent(ctx context.Context, limit int) ([]repository.Transfer, error) {
	return m.listRecentFunc(ctx, limit)
}

// Mock enqueuer
type mockEnqueuer struct {
	enqueued []ReceiptPayload
	err      error
}

func (m *mockEnqueuer) EnqueueReceipt(_ context.Context, payload ReceiptPayload) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, payload)
	return nil
}

func testQuote(t *testing.T, amount string) *Quote {
	t.Helper()
	svc := newTestQuoteService(nil)
	q, err := svc.Quote(context.Background(), decimal.RequireFromString(amount), "USD", "EUR")
	if err != nil {
		t.Fatalf("failed to build test quote: %v", err)
	}
	return q
}

func TestRecord_EndToEnd(t *testing.T) {
	sugar := zap.NewNop().Sugar()

	var inserted *repository.Transfer
	repo := &mockTransferRepo{
		insertFunc: func(ctx context.Context, tr *repository.Transfer) error {
			inserted = tr
			return nil
		},
	}
	enq := &mockEnqueuer{}
	svc := NewTransferService(repo, enq, sugar)

	q := testQuote(t, "100")
	rec, err := svc.Record(context.Background(), q, "", "Jane Doe", "jane@example.com", "gift")
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	if rec.Status != repository.StatusCompleted {
		t.Errorf("Status = %s, want completed", rec.Status)
	}
	if rec.ID == "" {
		t.Error("Expected non-empty transfer ID")
	}
	if !strings.HasPrefix(rec.TrackingNumber, "RM") || len(rec.TrackingNumber) != 10 {
		t.Errorf("TrackingNumber = %q, want RM followed by 8 characters", rec.TrackingNumber)
	}
	wantTotal := decimal.NewFromInt(100).Add(ComputeFee(decimal.NewFromInt(100)))
	if !rec.Quote.TotalAmount.Equal(wantTotal) {
		t.Errorf("TotalAmount = %s, want %s", rec.Quote.TotalAmount, wantTotal)
	}
	if rec.SenderRef != "demo-user" {
		t.Errorf("SenderRef = %q, want demo-user default", rec.SenderRef)
	}

	if inserted == nil {
		t.Fatal("Expected transfer to be persisted")
	}
	if inserted.ID != rec.ID {
		t.Errorf("Persisted ID %s does not match record ID %s", inserted.ID, rec.ID)
	}

	if len(enq.enqueued) != 1 {
		t.Fatalf("Expected 1 receipt task, got %d", len(enq.enqueued))
	}
	if enq.enqueued[0].RecipientEmail != "jane@example.com" {
		t.Errorf("Receipt email = %q, want jane@example.com", enq.enqueued[0].RecipientEmail)
	}
}

func TestRecord_ValidationFirstFieldWins(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	svc := NewTransferService(&mockTransferRepo{}, nil, sugar)

	zeroQuote := testQuote(t, "0")
	okQuote := testQuote(t, "100")

	tests := []struct {
		name      string
		quote     *Quote
		recipient string
		email     string
		wantField string
	}{
		{"missing name", okQuote, "", "jane@example.com", "recipientName"},
		{"blank name", okQuote, "   ", "jane@example.com", "recipientName"},
		{"missing email", okQuote, "Jane Doe", "", "recipientEmail"},
		{"zero amount", zeroQuote, "Jane Doe", "jane@example.com", "amount"},
		{"name checked before email", okQuote, "", "", "recipientName"},
		{"nil quote", nil, "Jane Doe", "jane@example.com", "quote"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), tc.quote, "sender-1", tc.recipient, tc.email, "gift")

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tc.wantField)
			}
		})
	}
}

func TestRecord_RepoErrorIsInternal(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	repo := &mockTransferRepo{
		insertFunc: func(ctx context.Context, tr *repository.Transfer) error {
			return errors.New("db down")
		},
	}
	svc := NewTransferService(repo, nil, sugar)

	_, err := svc.Record(context.Background(), testQuote(t, "100"), "sender-1", "Jane Doe", "jane@example.com", "gift")
	if !errors.Is(err, ErrInternal) {
		t.Errorf("Expected ErrInternal, got %v", err)
	}
}

func TestRecord_EnqueueFailureDoesNotFailTransfer(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	repo := &mockTransferRepo{
		insertFunc: func(ctx context.Context, tr *repository.Transfer) error { return nil },
	}
	enq := &mockEnqueuer{err: errors.New("queue unavailable")}
	svc := NewTransferService(repo, enq, sugar)

	rec, err := svc.Record(context.Background(), testQuote(t, "100"), "sender-1", "Jane Doe", "jane@example.com", "gift")
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Status != repository.StatusCompleted {
		t.Errorf("Status = %s, want completed", rec.Status)
	}
}

func TestGetTransfer_InvalidID(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	svc := NewTransferService(&mockTransferRepo{}, nil, sugar)

	_, err := svc.GetTransfer(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrInvalidTransferID) {
		t.Errorf("Expected ErrInvalidTransferID, got %v", err)
	}
}

func TestGetTransfer_NotFound(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	repo := &mockTransferRepo{
		getByIDFunc: func(ctx context.Context, id string) (*repository.Transfer, error) {
			return nil, nil
		},
	}
	svc := NewTransferService(repo, nil, sugar)

	_, err := svc.GetTransfer(context.Background(), "123e4567-e89b-12d3-a456-426614174000")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListTransfers_LimitClamped(t *testing.T) {
	sugar := zap.NewNop().Sugar()

	var gotLimit int
	repo := &mockTransferRepo{
		listRecentFunc: func(ctx context.Context, limit int) ([]repository.Transfer, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewTransferService(repo, nil, sugar)

	if _, err := svc.ListTransfers(context.Background(), 0); err != nil {
		t.Fatalf("ListTransfers returned error: %v", err)
	}
	if gotLimit != 50 {
		t.Errorf("limit = %d, want default 50", gotLimit)
	}

	if _, err := svc.ListTransfers(context.Background(), 1000); err != nil {
		t.Fatalf("ListTransfers returned error: %v", err)
	}
	if gotLimit != 50 {
		t.Errorf("limit = %d, want clamped 50", gotLimit)
	}
}
