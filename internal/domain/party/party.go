// Package party defines the identity records used to decide whether a
// counterparty is connected to the account holder: registered businesses,
// declared related parties, and the resolution result.
package party

// MatchSource identifies how a connected-party match was established
type MatchSource string

const (
	MatchSourceOwnBusiness  MatchSource = "own_business"
	MatchSourceRelatedParty MatchSource = "related_party"
	MatchSourceManual       MatchSource = "manual"
)

// Business is one of the account holder's registered businesses
type Business struct {
	Name               string `json:"name"`
	TaxID              string `json:"tax_id"`
	RegistrationNumber string `json:"registration_number"`
}

// RelatedParty is a counterparty the account holder has declared a
// relationship with
type RelatedParty struct {
	Name             string `json:"name"`
	TaxID            string `json:"tax_id"`
	RelationshipType string `json:"relationship_type"`
}

// Match is the result of one connected-party resolution. It is computed per
// lookup and never persisted by the engine.
type Match struct {
	IsConnected      bool        `json:"is_connected"`
	MatchSource      MatchSource `json:"match_source,omitempty"`
	MatchedName      string      `json:"matched_name,omitempty"`
	RelationshipType string      `json:"relationship_type,omitempty"`
}

// SourceLabel returns the human-readable label used in disclosure warnings
func (m *Match) SourceLabel() string {
	switch m.MatchSource {
	case MatchSourceOwnBusiness:
		return "own business"
	case MatchSourceRelatedParty:
		return "declared related party"
	default:
		return string(m.MatchSource)
	}
}
