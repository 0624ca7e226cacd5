package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/domain/party"
	"github.com/jothamO/prism-app-sub003/internal/platform/persistence"
)

// PartyRepository implements party.Repository using PostgreSQL
type PartyRepository struct {
	db persistence.Querier
}

// NewPartyRepository creates a new PostgreSQL party repository
func NewPartyRepository(db persistence.Querier) party.Repository {
	return &PartyRepository{db: db}
}

// ListBusinesses returns the account holder's registered businesses in
// insertion order
func (r *PartyRepository) ListBusinesses(ctx context.Context, accountHolderID uuid.UUID) ([]party.Business, error) {
	query := `
		SELECT name, tax_id, registration_number
		FROM businesses
		WHERE account_holder_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, accountHolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []party.Business
	for rows.Next() {
		var b party.Business
		if err := rows.Scan(&b.Name, &b.TaxID, &b.RegistrationNumber); err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating businesses: %w", err)
	}

	return businesses, nil
}

// ListRelatedParties returns the account holder's declared related parties in
// insertion order
func (r *PartyRepository) ListRelatedParties(ctx context.Context, accountHolderID uuid.UUID) ([]party.RelatedParty, error) {
	query := `
		SELECT name, tax_id, relationship_type
		FROM related_parties
		WHERE account_holder_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, accountHolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list related parties: %w", err)
	}
	defer rows.Close()

	var parties []party.RelatedParty
	for rows.Next() {
		var p party.RelatedParty
		if err := rows.Scan(&p.Name, &p.TaxID, &p.RelationshipType); err != nil {
			return nil, fmt.Errorf("failed to scan related party: %w", err)
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating related parties: %w", err)
	}

	return parties, nil
}
