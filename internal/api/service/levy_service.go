package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/compliance/reconciler"
	"github.com/jothamO/prism-app-sub003/internal/domain/levy"
	"github.com/jothamO/prism-app-sub003/internal/domain/review"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// LevyServiceImpl implements the LevyService interface
type LevyServiceImpl struct {
	detector *reconciler.Detector
	levyRepo levy.Repository
	sink     review.QueueSink
	logger   *slog.Logger
}

// NewLevyService creates a new levy reconciliation service
func NewLevyService(logger *slog.Logger, detector *reconciler.Detector, levyRepo levy.Repository, sink review.QueueSink) LevyService {
	return &LevyServiceImpl{
		detector: detector,
		levyRepo: levyRepo,
		sink:     sink,
		logger:   logger,
	}
}

// ScanTransactions reconciles a batch. Malformed records are rejected
// individually and the rest of the batch continues; a persistence or
// escalation failure aborts with an error.
func (s *LevyServiceImpl) ScanTransactions(ctx context.Context, accountHolderID uuid.UUID, txns []transaction.Transaction) (*LevyScanResult, error) {
	valid, rejected := partitionValid(s.logger, txns)

	charges := s.detector.Detect(accountHolderID, valid)

	for _, charge := range charges {
		if err := s.levyRepo.Upsert(ctx, charge); err != nil {
			s.logger.Error("Failed to persist levy charge",
				"transaction_id", charge.TransactionID,
				"account_holder_id", accountHolderID,
				"error", err,
			)
			return nil, fmt.Errorf("failed to persist levy charge %s: %w", charge.TransactionID, err)
		}
	}

	summary := levy.Summarize(charges)

	if summary.ExemptIllegal > 0 {
		if err := s.escalateIllegalCharges(ctx, accountHolderID, charges, summary); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Levy scan completed",
		"account_holder_id", accountHolderID,
		"total", summary.Total,
		"legitimate", summary.Legitimate,
		"exempt_illegal", summary.ExemptIllegal,
		"suspicious", summary.Suspicious,
		"rejected", len(rejected),
	)

	return &LevyScanResult{
		Charges:  charges,
		Summary:  summary,
		Rejected: rejected,
	}, nil
}

// escalateIllegalCharges forwards the batch's illegal charges to the review
// queue as a single entry
func (s *LevyServiceImpl) escalateIllegalCharges(ctx context.Context, accountHolderID uuid.UUID, charges []*levy.Charge, summary levy.ScanSummary) error {
	var reasons []string
	var chargeIDs []string
	for _, charge := range charges {
		if charge.Status != levy.StatusExemptIllegal {
			continue
		}
		reasons = append(reasons, charge.Reason)
		chargeIDs = append(chargeIDs, charge.TransactionID)
	}

	escalation := &review.Escalation{
		UserID:        accountHolderID,
		Type:          review.TypeIllegalLevyCharges,
		Priority:      review.PriorityMedium,
		PriorityScore: review.IllegalLevyPriorityScore,
		Reasons:       reasons,
		Notes: fmt.Sprintf("%d illegal levy charge(s) totalling %s",
			summary.ExemptIllegal, transaction.FormatNaira(summary.IllegalTotalAmount)),
		Metadata: map[string]interface{}{
			"charge_transaction_ids": chargeIDs,
			"illegal_total_amount":   summary.IllegalTotalAmount,
		},
	}

	if err := s.sink.Enqueue(ctx, escalation); err != nil {
		s.logger.Error("Failed to escalate illegal levy charges",
			"account_holder_id", accountHolderID,
			"count", summary.ExemptIllegal,
			"error", err,
		)
		return fmt.Errorf("failed to escalate illegal levy charges: %w", err)
	}

	return nil
}

// GetChargesByAccountHolderID retrieves paginated stored charges.
// Returns charges, total count, and any error
func (s *LevyServiceImpl) GetChargesByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID, page, perPage int) ([]*levy.Charge, int64, error) {
	offset := (page - 1) * perPage

	charges, err := s.levyRepo.GetByAccountHolderID(ctx, accountHolderID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.levyRepo.CountByAccountHolderID(ctx, accountHolderID)
	if err != nil {
		return nil, 0, err
	}

	return charges, total, nil
}

// partitionValid validates feed records individually: failing records are
// collected for the caller and never abort the batch
func partitionValid(logger *slog.Logger, txns []transaction.Transaction) ([]transaction.Transaction, []RejectedTransaction) {
	valid := make([]transaction.Transaction, 0, len(txns))
	var rejected []RejectedTransaction

	for i, tx := range txns {
		if err := tx.Validate(); err != nil {
			logger.Warn("Rejected malformed transaction",
				"index", i,
				"transaction_id", tx.ID,
				"error", err,
			)
			rejected = append(rejected, RejectedTransaction{
				Index:         i,
				TransactionID: tx.ID,
				Reason:        err.Error(),
			})
			continue
		}
		valid = append(valid, tx)
	}

	return valid, rejected
}
