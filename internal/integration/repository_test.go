//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remitsvc/internal/repository"
)

func TestTransferRepository_InsertAndGet(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)
	repo := repository.NewPostgresTransferRepository(testDB)

	tr := newTestTransfer("RM11111111")
	require.NoError(t, repo.Insert(ctx, tr))

	got, err := repo.GetByID(ctx, tr.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, tr.ID, got.ID)
	assert.Equal(t, "RM11111111", got.TrackingNumber)
	assert.Equal(t, "Jane Doe", got.RecipientName)
	assert.Equal(t, "jane@example.com", got.RecipientEmail)
	assert.Equal(t, "family support", got.Purpose)
	assert.Equal(t, "USD", got.FromCurrency)
	assert.Equal(t, "EUR", got.ToCurrency)
	assert.Equal(t, "fallback", got.RateSource)
	assert.Equal(t, repository.StatusCompleted, got.Status)

	// Decimal columns must round-trip exactly.
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("100.55")), "amount: %s", got.Amount)
	assert.True(t, got.Rate.Equal(decimal.RequireFromString("0.92")), "rate: %s", got.Rate)
	assert.True(t, got.ConvertedAmount.Equal(decimal.RequireFromString("92.51")), "converted: %s", got.ConvertedAmount)
	assert.True(t, got.Fee.Equal(decimal.NewFromInt(2)), "fee: %s", got.Fee)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("102.55")), "total: %s", got.TotalAmount)
}

func TestTransferRepository_GetByID_Absent(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)
	repo := repository.NewPostgresTransferRepository(testDB)

	got, err := repo.GetByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTransferRepository_DuplicateTrackingNumber(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)
	repo := repository.NewPostgresTransferRepository(testDB)

	first := newTestTransfer("RMDUP00001")
	require.NoError(t, repo.Insert(ctx, first))

	dup := newTestTransfer("RMDUP00001")
	err := repo.Insert(ctx, dup)
	assert.Error(t, err, "unique constraint on tracking_number should reject the duplicate")
}

func TestTransferRepository_ListRecent(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)
	repo := repository.NewPostgresTransferRepository(testDB)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		tr := newTestTransfer(trackingFor(i))
		tr.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Insert(ctx, tr))
	}

	got, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, trackingFor(4), got[0].TrackingNumber)
	assert.Equal(t, trackingFor(3), got[1].TrackingNumber)
	assert.Equal(t, trackingFor(2), got[2].TrackingNumber)
}

func TestTransferRepository_ListRecent_Empty(t *testing.T) {
	resetTestData(t)
	ctx := testContext(t)
	repo := repository.NewPostgresTransferRepository(testDB)

	got, err := repo.ListRecent(ctx, 50)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func trackingFor(i int) string {
	return "RM0000000" + string(rune('A'+i))
}
