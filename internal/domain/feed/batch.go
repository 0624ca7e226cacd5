// Package feed defines the Kafka message shape for transaction feed batches
// delivered by the banking data provider integration.
package feed

import (
	"time"

	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// Batch is one feed message: the transactions retrieved for a single account
// holder, ordered ascending by timestamp. Batches for different account
// holders are independent and may be processed concurrently.
type Batch struct {
	BatchID         uuid.UUID                 `json:"batch_id"`
	AccountHolderID uuid.UUID                 `json:"account_holder_id"`
	Transactions    []transaction.Transaction `json:"transactions"`
	CorrelationID   string                    `json:"correlation_id,omitempty"`
	RetrievedAt     time.Time                 `json:"retrieved_at"`
}
