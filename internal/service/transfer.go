package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"remitsvc/internal/rates"
	"remitsvc/internal/repository"
)

// TransferRecord is the finalized, immutable outcome of a submitted
// (simulated) transfer. No real settlement happens.
type TransferRecord struct {
	ID             string
	TrackingNumber string
	SenderRef      string
	RecipientName  string
	RecipientEmail string
	Purpose        string
	Quote          Quote
	Status         repository.Status
	CreatedAt      time.Time
}

// TaskTypeTransferReceipt is the Asynq task type for receipt notification jobs.
const TaskTypeTransferReceipt = "transfer:receipt"

// ReceiptPayload is the payload structure for receipt notification tasks.
type ReceiptPayload struct {
	TransferID     string `json:"transfer_id"`
	TrackingNumber string `json:"tracking_number"`
	RecipientName  string `json:"recipient_name"`
	RecipientEmail string `json:"recipient_email"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Delivery       string `json:"delivery"`
}

// ReceiptEnqueuer enqueues receipt notification tasks for completed transfers.
type ReceiptEnqueuer interface {
	EnqueueReceipt(ctx context.Context, payload ReceiptPayload) error
}

// TransferServiceInterface defines the operations available for transfers.
type TransferServiceInterface interface {
	Record(ctx context.Context, q *Quote, senderRef, recipientName, recipientEmail, purpose string) (*TransferRecord, error)
	GetTransfer(ctx context.Context, id string) (*TransferRecord, error)
	ListTransfers(ctx context.Context, limit int) ([]TransferRecord, error)
}

// TransferService records finalized quotes as immutable transfer records.
type TransferService struct {
	repo     repository.TransferRepository
	enqueuer ReceiptEnqueuer
	log      *zap.SugaredLogger
}

// NewTransferService creates a new TransferService. The enqueuer may be nil,
// in which case no receipt notification is produced.
func NewTransferService(repo repository.TransferRepository, enqueuer ReceiptEnqueuer, logger *zap.SugaredLogger) *TransferService {
	return &TransferService{
		repo:     repo,
		enqueuer: enqueuer,
		log:      logger,
	}
}

var _ TransferServiceInterface = (*TransferService)(nil)

// Record validates the submission and produces a completed transfer record.
// Validation reports the first failing field.
func (s *TransferService) Record(ctx context.Context, q *Quote, senderRef, recipientName, recipientEmail, purpose string) (*TransferRecord, error) {
	if q == nil {
		return nil, &ValidationError{Field: "quote", Msg: "is required"}
	}
	if strings.TrimSpace(recipientName) == "" {
		return nil, &ValidationError{Field: "recipientName", Msg: "is required"}
	}
	if strings.TrimSpace(recipientEmail) == "" {
		return nil, &ValidationError{Field: "recipientEmail", Msg: "is required"}
	}
	if !q.Amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Msg: "must be positive"}
	}

	if senderRef == "" {
		senderRef = "demo-user"
	}

	rec := &TransferRecord{
		ID:             uuid.New().String(),
		TrackingNumber: newTrackingNumber(),
		SenderRef:      senderRef,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		Purpose:        purpose,
		Quote:          *q,
		Status:         repository.StatusCompleted,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, recordToRepo(rec)); err != nil {
		s.log.Errorw("Insert transfer DB error", "transfer_id", rec.ID, "error", err)
		return nil, ErrInternal
	}

	s.enqueueReceipt(ctx, rec)

	s.log.Infow("Transfer recorded",
		"transfer_id", rec.ID,
		"tracking_number", rec.TrackingNumber,
		"pair", rec.Quote.FromCurrency+"/"+rec.Quote.ToCurrency,
		"total", rec.Quote.TotalAmount.String(),
	)
	return rec, nil
}

// GetTransfer retrieves a transfer record by its id.
func (s *TransferService) GetTransfer(ctx context.Context, id string) (*TransferRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidTransferID
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("DB error fetching transfer by ID", "transfer_id", id, "error", err)
		return nil, ErrInternal
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return recordFromRepo(t), nil
}

// ListTransfers returns the most recent transfer records, newest first.
func (s *TransferService) ListTransfers(ctx context.Context, limit int) ([]TransferRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	ts, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.log.Errorw("DB error listing transfers", "error", err)
		return nil, ErrInternal
	}

	out := make([]TransferRecord, 0, len(ts))
	for i := range ts {
		out = append(out, *recordFromRepo(&ts[i]))
	}
	return out, nil
}

// enqueueReceipt enqueues a simulated receipt email. Failures are logged and
// never fail the transfer.
func (s *TransferService) enqueueReceipt(ctx context.Context, rec *TransferRecord) {
	if s.enqueuer == nil {
		return
	}
	payload := ReceiptPayload{
		TransferID:     rec.ID,
		TrackingNumber: rec.TrackingNumber,
		RecipientName:  rec.RecipientName,
		RecipientEmail: rec.RecipientEmail,
		Amount:         rec.Quote.ConvertedAmount.String(),
		Currency:       rec.Quote.ToCurrency,
		Delivery:       rec.Quote.DeliveryEstimate,
	}
	if err := s.enqueuer.EnqueueReceipt(ctx, payload); err != nil {
		s.log.Warnw("Failed to enqueue receipt notification", "transfer_id", rec.ID, "error", err)
	}
}

// newTrackingNumber generates a tracking number like "RM1A2B3C4D".
func newTrackingNumber() string {
	return "RM" + strings.ToUpper(uuid.NewString()[:8])
}

func recordToRepo(rec *TransferRecord) *repository.Transfer {
	return &repository.Transfer{
		ID:               rec.ID,
		TrackingNumber:   rec.TrackingNumber,
		SenderRef:        rec.SenderRef,
		RecipientName:    rec.RecipientName,
		RecipientEmail:   rec.RecipientEmail,
		Purpose:          rec.Purpose,
		Amount:           rec.Quote.Amount,
		FromCurrency:     rec.Quote.FromCurrency,
		ToCurrency:       rec.Quote.ToCurrency,
		Rate:             rec.Quote.Rate,
		ConvertedAmount:  rec.Quote.ConvertedAmount,
		Fee:              rec.Quote.Fee,
		TotalAmount:      rec.Quote.TotalAmount,
		DeliveryEstimate: rec.Quote.DeliveryEstimate,
		RateSource:       string(rec.Quote.Source),
		Status:           rec.Status,
		CreatedAt:        rec.CreatedAt,
	}
}

func recordFromRepo(t *repository.Transfer) *TransferRecord {
	return &TransferRecord{
		ID:             t.ID,
		TrackingNumber: t.TrackingNumber,
		SenderRef:      t.SenderRef,
		RecipientName:  t.RecipientName,
		RecipientEmail: t.RecipientEmail,
		Purpose:        t.Purpose,
		Quote: Quote{
			Amount:           t.Amount,
			FromCurrency:     t.FromCurrency,
			ToCurrency:       t.ToCurrency,
			Rate:             t.Rate,
			ConvertedAmount:  t.ConvertedAmount,
			Fee:              t.Fee,
			TotalAmount:      t.TotalAmount,
			DeliveryEstimate: t.DeliveryEstimate,
			Source:           rates.Source(t.RateSource),
			QuotedAt:         t.CreatedAt,
		},
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
