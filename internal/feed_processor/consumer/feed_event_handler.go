package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jothamO/prism-app-sub003/internal/domain/feed"
	"github.com/jothamO/prism-app-sub003/internal/feed_processor/service"
	"github.com/jothamO/prism-app-sub003/internal/platform/messaging/producers"
)

// FeedEventHandler handles incoming transaction feed messages from Kafka
type FeedEventHandler struct {
	reconciliationService service.ReconciliationService
	producer              producers.DeadLetterPublisher
	logger                *slog.Logger
}

// NewFeedEventHandler creates a new handler
func NewFeedEventHandler(
	logger *slog.Logger,
	reconciliationService service.ReconciliationService,
	producer producers.DeadLetterPublisher,
) *FeedEventHandler {
	return &FeedEventHandler{
		reconciliationService: reconciliationService,
		producer:              producer,
		logger:                logger,
	}
}

// HandleMessage processes Kafka messages
func (h *FeedEventHandler) HandleMessage(ctx context.Context, key []byte, value []byte) error {
	var batch feed.Batch
	if err := json.Unmarshal(value, &batch); err != nil {
		unmarshalErrorMsg := "Failed to unmarshal feed batch from Kafka message"
		h.logger.Error(unmarshalErrorMsg,
			"error", err,
			"message_key", string(key),
		)

		// Send to DLQ if available
		if h.producer != nil {
			dlqReason := fmt.Sprintf("%s: %s", unmarshalErrorMsg, err.Error())
			if dlqErr := h.producer.PublishToDLQ(ctx, string(key), value, dlqReason); dlqErr != nil {
				h.logger.Error("Failed to publish message to DLQ after unmarshal error",
					"dlq_error", dlqErr,
					"original_error", err,
					"message_key", string(key),
				)
			} else {
				h.logger.Info("Successfully published unprocessable message to DLQ", "message_key", string(key), "reason", dlqReason)
				// Message handled, commit offset
				return nil
			}
		}
		// Allow Kafka retries
		return fmt.Errorf("failed to unmarshal message value: %w", err)
	}

	logger := h.logger
	if batch.CorrelationID != "" {
		logger = h.logger.With("correlation_id", batch.CorrelationID)
	}

	logger.Info("Received feed batch for reconciliation",
		"batch_id", batch.BatchID.String(),
		"account_holder_id", batch.AccountHolderID.String(),
		"transactions", len(batch.Transactions),
	)

	if err := h.reconciliationService.ProcessBatch(ctx, &batch); err != nil {
		logger.Error("Failed to process feed batch",
			"batch_id", batch.BatchID.String(),
			"account_holder_id", batch.AccountHolderID.String(),
			"error", err,
		)
		return fmt.Errorf("processing feed batch %s failed: %w", batch.BatchID.String(), err)
	}

	logger.Info("Successfully processed feed batch", "batch_id", batch.BatchID.String())
	return nil // Success, commit offset
}
