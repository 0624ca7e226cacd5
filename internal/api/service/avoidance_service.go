package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/compliance/risk"
	"github.com/jothamO/prism-app-sub003/internal/domain/avoidance"
	"github.com/jothamO/prism-app-sub003/internal/domain/review"
)

// highRiskPriorityScore is the fixed score attached to escalated high-risk
// verdicts
const highRiskPriorityScore = 0.9

// AvoidanceServiceImpl implements the AvoidanceService interface
type AvoidanceServiceImpl struct {
	evaluator *risk.Evaluator
	sink      review.QueueSink
	logger    *slog.Logger
}

// NewAvoidanceService creates a new avoidance risk service
func NewAvoidanceService(logger *slog.Logger, evaluator *risk.Evaluator, sink review.QueueSink) AvoidanceService {
	return &AvoidanceServiceImpl{
		evaluator: evaluator,
		sink:      sink,
		logger:    logger,
	}
}

// CheckTransactions evaluates a batch for avoidance risk. Malformed records
// are rejected individually; high-risk verdicts are escalated to the review
// queue before the outcome is returned.
func (s *AvoidanceServiceImpl) CheckTransactions(ctx context.Context, accountHolderID uuid.UUID, items []AvoidanceCheckItem) (*AvoidanceCheckOutcome, error) {
	requests := make([]risk.Request, 0, len(items))
	var rejected []RejectedTransaction

	for i, item := range items {
		if err := item.Transaction.Validate(); err != nil {
			s.logger.Warn("Rejected malformed transaction",
				"index", i,
				"transaction_id", item.Transaction.ID,
				"error", err,
			)
			rejected = append(rejected, RejectedTransaction{
				Index:         i,
				TransactionID: item.Transaction.ID,
				Reason:        err.Error(),
			})
			continue
		}

		requests = append(requests, risk.Request{
			Input: risk.Input{
				Transaction:        item.Transaction,
				DeclaredConnected:  item.ConnectedPersonDeclared,
				CounterpartyAmount: item.CounterpartyAmount,
			},
			CounterpartyName:  item.CounterpartyName,
			CounterpartyTaxID: item.CounterpartyTaxID,
		})
	}

	batch := s.evaluator.EvaluateBatch(ctx, accountHolderID, requests)

	for _, check := range batch.Results {
		if check.RiskLevel != avoidance.RiskHigh {
			continue
		}
		if err := s.escalateHighRisk(ctx, accountHolderID, check); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Avoidance check completed",
		"account_holder_id", accountHolderID,
		"total", batch.Summary.Total,
		"high_risk", batch.Summary.HighRisk,
		"auto_detected_connections", batch.Summary.AutoDetectedConnections,
		"rejected", len(rejected),
	)

	return &AvoidanceCheckOutcome{
		Results:  batch.Results,
		Summary:  batch.Summary,
		Rejected: rejected,
	}, nil
}

// escalateHighRisk forwards one high-risk verdict to the review queue
func (s *AvoidanceServiceImpl) escalateHighRisk(ctx context.Context, accountHolderID uuid.UUID, check *avoidance.Check) error {
	escalation := &review.Escalation{
		UserID:        accountHolderID,
		Type:          review.TypeHighRiskTransaction,
		Priority:      review.PriorityHigh,
		PriorityScore: highRiskPriorityScore,
		Reasons:       check.Warnings,
		Notes:         check.Recommendation,
		Metadata: map[string]interface{}{
			"transaction_id":     check.TransactionID,
			"tax_act_references": check.TaxActReferences,
		},
	}

	if err := s.sink.Enqueue(ctx, escalation); err != nil {
		s.logger.Error("Failed to escalate high-risk transaction",
			"account_holder_id", accountHolderID,
			"transaction_id", check.TransactionID,
			"error", err,
		)
		return fmt.Errorf("failed to escalate high-risk transaction %s: %w", check.TransactionID, err)
	}

	return nil
}
