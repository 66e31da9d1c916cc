// Package worker implements background task handling for receipt notifications.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"remitsvc/internal/service"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewReceiptHandler returns a function to handle receipt notification tasks.
// Delivery is simulated: the receipt is written to the log instead of an
// email gateway.
func NewReceiptHandler(logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload service.ReceiptPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
			return nil
		}

		logger.Infow("Receipt sent",
			"transfer_id", payload.TransferID,
			"tracking_number", payload.TrackingNumber,
			"to", payload.RecipientEmail,
			"recipient", payload.RecipientName,
			"amount", payload.Amount+" "+payload.Currency,
			"delivery", payload.Delivery,
		)
		return nil
	}
}

// AsynqEnqueuer enqueues receipt tasks to an Asynq queue with retry and
// timeout settings.
type AsynqEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

// NewAsynqEnqueuer creates a new AsynqEnqueuer with the given client, retry limit, and task timeout duration.
func NewAsynqEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
	}
}

var _ service.ReceiptEnqueuer = (*AsynqEnqueuer)(nil)

// EnqueueReceipt enqueues a receipt notification task for a completed transfer.
func (e *AsynqEnqueuer) EnqueueReceipt(ctx context.Context, payload service.ReceiptPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(service.TaskTypeTransferReceipt, data,
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
	)

	_, err = e.client.EnqueueContext(ctx, task)
	return err
}
