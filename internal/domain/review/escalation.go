// Package review defines the escalation entries forwarded to the human review
// queue and the sink interface they are delivered through.
package review

import (
	"context"

	"github.com/google/uuid"
)

// Escalation types understood by the review queue
const (
	TypeIllegalLevyCharges  = "illegal_levy_charges"
	TypeHighRiskTransaction = "high_risk_transaction"
)

// Priorities assigned to escalations
const (
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// IllegalLevyPriorityScore is the fixed score attached to batched illegal
// levy escalations
const IllegalLevyPriorityScore = 0.6

// Escalation is one review queue entry
type Escalation struct {
	UserID        uuid.UUID              `json:"user_id"`
	Type          string                 `json:"type"`
	Priority      string                 `json:"priority"`
	PriorityScore float64                `json:"priority_score"`
	Reasons       []string               `json:"reasons"`
	Notes         string                 `json:"notes,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// QueueSink delivers escalations to the review queue
type QueueSink interface {
	Enqueue(ctx context.Context, escalation *Escalation) error
}
