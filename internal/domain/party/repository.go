package party

import (
	"context"

	"github.com/google/uuid"
)

// Repository reads the account holder's registered businesses and declared
// related parties. Both lists must preserve storage order: resolution ties are
// broken by position within a source.
type Repository interface {
	ListBusinesses(ctx context.Context, accountHolderID uuid.UUID) ([]Business, error)
	ListRelatedParties(ctx context.Context, accountHolderID uuid.UUID) ([]RelatedParty, error)
}
