package levy

import (
	"context"

	"github.com/google/uuid"
)

// Repository manages levy charge persistence. Upsert is keyed by transaction
// ID so an identical feed processed twice yields an identical charge set.
type Repository interface {
	Upsert(ctx context.Context, charge *Charge) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Charge, error)
	GetByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID, limit, offset int) ([]*Charge, error)
	CountByAccountHolderID(ctx context.Context, accountHolderID uuid.UUID) (int64, error)
}

// ErrChargeNotFound indicates a missing levy charge record
type ErrChargeNotFound struct {
	TransactionID string
}

func (e ErrChargeNotFound) Error() string {
	return "levy charge not found: " + e.TransactionID
}

// Is implements the errors.Is interface for ErrChargeNotFound
func (e ErrChargeNotFound) Is(target error) bool {
	t, ok := target.(ErrChargeNotFound)
	if !ok {
		return false
	}
	// An empty target TransactionID matches any ErrChargeNotFound
	if t.TransactionID == "" {
		return true
	}
	return e.TransactionID == t.TransactionID
}
