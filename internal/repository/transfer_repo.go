package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the state of a transfer record.
type Status string

// StatusCompleted is the only transfer state: records are created completed
// and never mutated. A production system would introduce a pending ->
// processing -> completed/failed lifecycle here.
const StatusCompleted Status = "completed"

// Transfer represents a finalized transfer record in the DB.
type Transfer struct {
	ID               string
	TrackingNumber   string
	SenderRef        string
	RecipientName    string
	RecipientEmail   string
	Purpose          string
	Amount           decimal.Decimal
	FromCurrency     string
	ToCurrency       string
	Rate             decimal.Decimal
	ConvertedAmount  decimal.Decimal
	Fee              decimal.Decimal
	TotalAmount      decimal.Decimal
	DeliveryEstimate string
	RateSource       string
	Status           Status
	CreatedAt        time.Time
}

// TransferRepository defines DB operations for transfer records.
type TransferRepository interface {
	Insert(ctx context.Context, t *Transfer) error
	GetByID(ctx context.Context, id string) (*Transfer, error)
	ListRecent(ctx context.Context, limit int) ([]Transfer, error)
}

// PostgresTransferRepository is an implementation of TransferRepository using PostgreSQL.
type PostgresTransferRepository struct {
	db *sql.DB
}

// NewPostgresTransferRepository creates a new PostgresTransferRepository.
func NewPostgresTransferRepository(db *sql.DB) TransferRepository {
	return &PostgresTransferRepository{db: db}
}

const transferColumns = `id::text, tracking_number, sender_ref, recipient_name, recipient_email,
              purpose, amount, from_currency, to_currency, rate, converted_amount,
              fee, total_amount, delivery_estimate, rate_source, status, created_at`

// Insert stores a new transfer record.
func (r *PostgresTransferRepository) Insert(ctx context.Context, t *Transfer) error {
	query := `INSERT INTO transfers (id, tracking_number, sender_ref, recipient_name, recipient_email,
              purpose, amount, from_currency, to_currency, rate, converted_amount,
              fee, total_amount, delivery_estimate, rate_source, status, created_at)
              VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.TrackingNumber, t.SenderRef, t.RecipientName, t.RecipientEmail,
		t.Purpose, t.Amount, t.FromCurrency, t.ToCurrency, t.Rate, t.ConvertedAmount,
		t.Fee, t.TotalAmount, t.DeliveryEstimate, t.RateSource, string(t.Status), t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}
	return nil
}

// GetByID retrieves a transfer record by id, returning (nil, nil) when absent.
func (r *PostgresTransferRepository) GetByID(ctx context.Context, id string) (*Transfer, error) {
	query := `SELECT ` + transferColumns + `
              FROM transfers
              WHERE id=$1::uuid`

	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTransfer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// ListRecent returns the most recent transfer records, newest first.
func (r *PostgresTransferRepository) ListRecent(ctx context.Context, limit int) ([]Transfer, error) {
	query := `SELECT ` + transferColumns + `
              FROM transfers
              ORDER BY created_at DESC
              LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck // best-effort close

	var out []Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransfer(row rowScanner) (*Transfer, error) {
	var t Transfer
	var statusStr string

	err := row.Scan(&t.ID, &t.TrackingNumber, &t.SenderRef, &t.RecipientName, &t.RecipientEmail,
		&t.Purpose, &t.Amount, &t.FromCurrency, &t.ToCurrency, &t.Rate, &t.ConvertedAmount,
		&t.Fee, &t.TotalAmount, &t.DeliveryEstimate, &t.RateSource, &statusStr, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	t.Status = Status(statusStr)
	return &t, nil
}
