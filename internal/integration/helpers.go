//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"remitsvc/internal/repository"
)

var (
	testDB  *sql.DB
	testRDB *redis.Client
)

// resetTestData truncates the transfers table and flushes the current Redis database.
func resetTestData(t *testing.T) {
	t.Helper()

	_, err := testDB.ExecContext(context.Background(), "TRUNCATE TABLE transfers CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate transfers table: %v", err)
	}

	if err := testRDB.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// newTestTransfer builds a transfer row with sane defaults for insertion tests.
func newTestTransfer(trackingNumber string) *repository.Transfer {
	return &repository.Transfer{
		ID:               uuid.NewString(),
		TrackingNumber:   trackingNumber,
		SenderRef:        "demo-user",
		RecipientName:    "Jane Doe",
		RecipientEmail:   "jane@example.com",
		Purpose:          "family support",
		Amount:           decimal.RequireFromString("100.55"),
		Rate:             decimal.RequireFromString("0.92"),
		ConvertedAmount:  decimal.RequireFromString("92.51"),
		Fee:              decimal.NewFromInt(2),
		TotalAmount:      decimal.RequireFromString("102.55"),
		FromCurrency:     "USD",
		ToCurrency:       "EUR",
		DeliveryEstimate: "1-2 hours",
		RateSource:       "fallback",
		Status:           repository.StatusCompleted,
		CreatedAt:        time.Now().UTC(),
	}
}
