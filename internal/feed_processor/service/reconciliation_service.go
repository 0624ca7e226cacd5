package service

import (
	"context"
	"fmt"
	"log/slog"

	apiservice "github.com/jothamO/prism-app-sub003/internal/api/service"
	"github.com/jothamO/prism-app-sub003/internal/domain/feed"
)

// ReconciliationServiceImpl implements the ReconciliationService interface by
// running the levy scan over each feed batch
type ReconciliationServiceImpl struct {
	levyService apiservice.LevyService
	logger      *slog.Logger
}

// NewReconciliationService creates a new feed reconciliation service
func NewReconciliationService(logger *slog.Logger, levyService apiservice.LevyService) ReconciliationService {
	return &ReconciliationServiceImpl{
		levyService: levyService,
		logger:      logger,
	}
}

// ProcessBatch reconciles one feed batch. Charge upserts are idempotent, so a
// redelivered batch converges on the same charge set.
func (s *ReconciliationServiceImpl) ProcessBatch(ctx context.Context, batch *feed.Batch) error {
	logger := s.logger
	if batch.CorrelationID != "" {
		logger = s.logger.With("correlation_id", batch.CorrelationID)
	}

	result, err := s.levyService.ScanTransactions(ctx, batch.AccountHolderID, batch.Transactions)
	if err != nil {
		return fmt.Errorf("failed to reconcile feed batch %s: %w", batch.BatchID, err)
	}

	logger.Info("Reconciled feed batch",
		"batch_id", batch.BatchID,
		"account_holder_id", batch.AccountHolderID,
		"total", result.Summary.Total,
		"exempt_illegal", result.Summary.ExemptIllegal,
		"suspicious", result.Summary.Suspicious,
		"rejected", len(result.Rejected),
	)

	return nil
}
