// Package avoidance defines the risk verdict produced for a transaction by the
// avoidance rule set, and the batch summary shape returned to callers.
package avoidance

import "github.com/jothamO/prism-app-sub003/internal/domain/party"

// RiskLevel is a totally ordered classification: low < medium < high
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

var riskOrdinal = map[RiskLevel]int{
	RiskLow:    0,
	RiskMedium: 1,
	RiskHigh:   2,
}

// Ordinal returns the rank of the risk level for comparisons.
// Unknown values rank below low.
func (r RiskLevel) Ordinal() int {
	if o, ok := riskOrdinal[r]; ok {
		return o
	}
	return -1
}

// MaxRisk returns the higher of two risk levels
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Ordinal() > a.Ordinal() {
		return b
	}
	return a
}

// Check is the aggregated verdict for one transaction. RiskLevel equals the
// maximum level produced by any individual rule; Warnings and
// TaxActReferences are deduplicated unions across rules.
type Check struct {
	TransactionID    string       `json:"transaction_id,omitempty"`
	RiskLevel        RiskLevel    `json:"risk_level"`
	Warnings         []string     `json:"warnings"`
	Recommendation   string       `json:"recommendation"`
	TaxActReferences []string     `json:"tax_act_references"`
	ConnectedParty   *party.Match `json:"connected_party_detection,omitempty"`
}

// BatchSummary reports risk counts for one evaluated batch
type BatchSummary struct {
	Total                   int  `json:"total"`
	LowRisk                 int  `json:"low_risk"`
	MediumRisk              int  `json:"medium_risk"`
	HighRisk                int  `json:"high_risk"`
	AutoDetectedConnections int  `json:"auto_detected_connections"`
	ResolverDegraded        bool `json:"resolver_degraded,omitempty"`
}

// BatchResult carries per-transaction verdicts in input order plus the summary
type BatchResult struct {
	Results []*Check     `json:"results"`
	Summary BatchSummary `json:"summary"`
}
