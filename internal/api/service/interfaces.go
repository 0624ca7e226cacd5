package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/domain/avoidance"
	"github.com/jothamO/prism-app-sub003/internal/domain/levy"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// RejectedTransaction records one feed item dropped during per-item validation
type RejectedTransaction struct {
	Index         int    `json:"index"`
	TransactionID string `json:"transaction_id,omitempty"`
	Reason        string `json:"reason"`
}

// LevyScanResult carries the charges and summary for one reconciled batch,
// plus any items rejected during validation
type LevyScanResult struct {
	Charges  []*levy.Charge        `json:"charges"`
	Summary  levy.ScanSummary      `json:"summary"`
	Rejected []RejectedTransaction `json:"rejected,omitempty"`
}

// LevyService defines the interface for levy reconciliation operations
type LevyService interface {
	// ScanTransactions reconciles a transaction batch, persists the resulting
	// charges, and escalates illegal findings to the review queue.
	// Persistence and escalation failures are returned to the caller.
	ScanTransactions(ctx context.Context, accountHolderID uuid.UUID, txns []transaction.Transaction) (*LevyScanResult, error)

	// GetChargesByAccountHolderID retrieves stored charges with pagination.
	// Returns charges, total count, and any error.
	GetChargesByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID, page, perPage int) ([]*levy.Charge, int64, error)
}

// AvoidanceCheckItem is one transaction plus the optional counterparty
// context supplied by the caller
type AvoidanceCheckItem struct {
	Transaction             transaction.Transaction
	CounterpartyName        string
	CounterpartyTaxID       string
	CounterpartyAmount      int64
	ConnectedPersonDeclared bool
}

// AvoidanceCheckOutcome carries order-preserving verdicts for the valid items,
// the batch summary, and any items rejected during validation
type AvoidanceCheckOutcome struct {
	Results  []*avoidance.Check     `json:"results"`
	Summary  avoidance.BatchSummary `json:"summary"`
	Rejected []RejectedTransaction  `json:"rejected,omitempty"`
}

// AvoidanceService defines the interface for avoidance risk operations
type AvoidanceService interface {
	// CheckTransactions evaluates a batch of transactions for avoidance risk
	// and escalates high-risk verdicts to the review queue
	CheckTransactions(ctx context.Context, accountHolderID uuid.UUID, items []AvoidanceCheckItem) (*AvoidanceCheckOutcome, error)
}
