// Package resolver decides whether a counterparty is connected to an account
// holder: one of their own registered businesses, or a declared related party.
// Matching combines exact tax-ID equality with fuzzy name comparison.
package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/domain/party"
)

// Resolver resolves counterparties against the account holder's registry
// records. Store failures degrade to "no match" rather than aborting the
// caller's risk evaluation; see Profile.Degraded.
type Resolver struct {
	repo      party.Repository
	threshold float64
	logger    *slog.Logger
}

// NewResolver creates a resolver. threshold is the Jaccard similarity a name
// comparison must exceed to count as a match.
func NewResolver(repo party.Repository, threshold float64, logger *slog.Logger) *Resolver {
	return &Resolver{
		repo:      repo,
		threshold: threshold,
		logger:    logger,
	}
}

// Profile is one account holder's registry snapshot, fetched once per batch so
// a batch of lookups costs two store queries rather than two per transaction.
type Profile struct {
	businesses []party.Business
	related    []party.RelatedParty
	threshold  float64

	// Degraded is set when a store read failed and the profile is partial.
	// Resolution still runs fail-open; callers surface the flag so consumers
	// know risk scoring may be under-reporting connections.
	Degraded bool
}

// ProfileFor loads the account holder's businesses and related parties.
// Store unavailability is logged as a warning and leaves the affected list
// empty: an infrastructure hiccup must not abort avoidance checks for
// transactions that have nothing to do with the outage.
func (r *Resolver) ProfileFor(ctx context.Context, accountHolderID uuid.UUID) *Profile {
	profile := &Profile{threshold: r.threshold}

	businesses, err := r.repo.ListBusinesses(ctx, accountHolderID)
	if err != nil {
		r.logger.Warn("business registry unavailable, treating as no registered businesses",
			"account_holder_id", accountHolderID.String(),
			"error", err,
		)
		profile.Degraded = true
	} else {
		profile.businesses = businesses
	}

	related, err := r.repo.ListRelatedParties(ctx, accountHolderID)
	if err != nil {
		r.logger.Warn("related-party store unavailable, treating as no declared parties",
			"account_holder_id", accountHolderID.String(),
			"error", err,
		)
		profile.Degraded = true
	} else {
		profile.related = related
	}

	return profile
}

// Resolve is the single-lookup convenience: loads the profile and resolves one
// counterparty against it.
func (r *Resolver) Resolve(ctx context.Context, accountHolderID uuid.UUID, counterpartyName, counterpartyTaxID string) party.Match {
	return r.ProfileFor(ctx, accountHolderID).Resolve(counterpartyName, counterpartyTaxID)
}

// Resolve matches a counterparty against the profile. Own businesses are
// checked before related parties, each in storage order; the first qualifying
// match wins. Returns a non-connected match when both inputs are absent or
// nothing qualifies.
func (p *Profile) Resolve(counterpartyName, counterpartyTaxID string) party.Match {
	if counterpartyName == "" && counterpartyTaxID == "" {
		return party.Match{IsConnected: false}
	}

	normalized := NormalizeName(counterpartyName)

	for _, b := range p.businesses {
		if p.matches(normalized, counterpartyTaxID, b.Name, b.TaxID) {
			return party.Match{
				IsConnected: true,
				MatchSource: party.MatchSourceOwnBusiness,
				MatchedName: b.Name,
			}
		}
	}

	for _, rp := range p.related {
		if p.matches(normalized, counterpartyTaxID, rp.Name, rp.TaxID) {
			return party.Match{
				IsConnected:      true,
				MatchSource:      party.MatchSourceRelatedParty,
				MatchedName:      rp.Name,
				RelationshipType: rp.RelationshipType,
			}
		}
	}

	return party.Match{IsConnected: false}
}

// matches applies the per-record rule: exact tax-ID equality is an immediate
// match, otherwise name similarity above the threshold qualifies.
func (p *Profile) matches(normalizedName, counterpartyTaxID, storedName, storedTaxID string) bool {
	if counterpartyTaxID != "" && storedTaxID != "" && counterpartyTaxID == storedTaxID {
		return true
	}
	if normalizedName == "" {
		return false
	}
	return Similarity(normalizedName, NormalizeName(storedName)) > p.threshold
}
