// Package risk implements the avoidance rule set: independent, stateless
// heuristics that each produce a partial verdict for one transaction, and the
// aggregator that combines them into a single check.
package risk

import (
	"fmt"

	"github.com/jothamO/prism-app-sub003/internal/config"
	"github.com/jothamO/prism-app-sub003/internal/domain/avoidance"
	"github.com/jothamO/prism-app-sub003/internal/domain/party"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// Input is one transaction plus the identity context a rule may consult
type Input struct {
	Transaction        transaction.Transaction
	Match              *party.Match // Resolver output, nil when no lookup ran
	DeclaredConnected  bool         // Account holder self-declared the counterparty as connected
	CounterpartyAmount int64        // Counterparty-reported amount in kobo, 0 when absent
}

// connected reports whether the counterparty is connected by declaration or
// detection
func (in *Input) connected() bool {
	return in.DeclaredConnected || (in.Match != nil && in.Match.IsConnected)
}

// Verdict is one rule's partial result
type Verdict struct {
	RiskLevel        avoidance.RiskLevel
	Warnings         []string
	TaxActReferences []string
}

// Rule is a single avoidance heuristic. Rules are pure and independent; the
// evaluator owns combining their verdicts.
type Rule interface {
	Name() string
	Evaluate(in Input) Verdict
}

// DefaultRules returns the production rule set with thresholds from config
func DefaultRules(cfg config.EngineConfig) []Rule {
	return []Rule{
		&connectedPersonRule{discrepancyPct: cfg.AmountDiscrepancyPct},
		&giftVsIncomeRule{largeGiftThreshold: cfg.LargeGiftThreshold},
		&capitalVsRevenueRule{},
		&roundNumberRule{unit: cfg.RoundAmountUnit, minimum: cfg.RoundAmountMinimum},
	}
}

// connectedPersonRule flags transactions with connected counterparties for
// arm's-length scrutiny, undisclosed connections, and reported-amount
// discrepancies beyond the configured tolerance.
type connectedPersonRule struct {
	discrepancyPct float64
}

func (r *connectedPersonRule) Name() string { return "connected_person" }

func (r *connectedPersonRule) Evaluate(in Input) Verdict {
	if !in.connected() {
		return Verdict{RiskLevel: avoidance.RiskLow}
	}

	v := Verdict{
		RiskLevel: avoidance.RiskMedium,
		Warnings: []string{
			"transaction with a connected person requires arm's-length pricing verification",
		},
		TaxActReferences: connectedPersonReferences,
	}

	if in.Match != nil && in.Match.IsConnected && !in.DeclaredConnected {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"undisclosed connected party detected: %s (%s)",
			in.Match.MatchedName, in.Match.SourceLabel(),
		))
	}

	if in.CounterpartyAmount > 0 && in.Transaction.Amount > 0 {
		diff := in.CounterpartyAmount - in.Transaction.Amount
		if diff < 0 {
			diff = -diff
		}
		if float64(diff) > r.discrepancyPct*float64(in.Transaction.Amount) {
			pct := float64(diff) / float64(in.Transaction.Amount) * 100
			v.RiskLevel = avoidance.RiskHigh
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"counterparty-reported amount differs from transaction amount by %.1f%%", pct,
			))
		}
	}

	return v
}

// giftVsIncomeRule flags narrations that label income as a gift, and large
// standalone gifts that may be disguised income
type giftVsIncomeRule struct {
	largeGiftThreshold int64
}

func (r *giftVsIncomeRule) Name() string { return "gift_vs_income" }

func (r *giftVsIncomeRule) Evaluate(in Input) Verdict {
	gift := containsAny(in.Transaction.Narration, giftNarrationKeywords)
	income := containsAny(in.Transaction.Narration, incomeNarrationKeywords)

	switch {
	case gift && income:
		return Verdict{
			RiskLevel: avoidance.RiskHigh,
			Warnings: []string{
				"narration mixes gift and income language; income may be mislabeled as a gift",
			},
			TaxActReferences: giftVsIncomeReferences,
		}
	case gift && in.Transaction.Amount > r.largeGiftThreshold:
		return Verdict{
			RiskLevel: avoidance.RiskMedium,
			Warnings: []string{
				fmt.Sprintf("large gift of %s may be disguised income",
					transaction.FormatNaira(in.Transaction.Amount)),
			},
			TaxActReferences: giftVsIncomeReferences,
		}
	default:
		return Verdict{RiskLevel: avoidance.RiskLow}
	}
}

// capitalVsRevenueRule flags narrations mixing capital and revenue language,
// which obscures the transaction's tax character
type capitalVsRevenueRule struct{}

func (r *capitalVsRevenueRule) Name() string { return "capital_vs_revenue" }

func (r *capitalVsRevenueRule) Evaluate(in Input) Verdict {
	capital := containsAny(in.Transaction.Narration, capitalNarrationKeywords)
	revenue := containsAny(in.Transaction.Narration, revenueNarrationKeywords)

	if capital && revenue {
		return Verdict{
			RiskLevel: avoidance.RiskMedium,
			Warnings: []string{
				"narration mixes capital and revenue characteristics; classification needs review",
			},
			TaxActReferences: capitalVsRevenueReferences,
		}
	}
	return Verdict{RiskLevel: avoidance.RiskLow}
}

// roundNumberRule flags suspiciously round amounts between connected parties.
// It only applies when the counterparty is connected, declared or detected.
type roundNumberRule struct {
	unit    int64
	minimum int64
}

func (r *roundNumberRule) Name() string { return "round_number" }

func (r *roundNumberRule) Evaluate(in Input) Verdict {
	if !in.connected() {
		return Verdict{RiskLevel: avoidance.RiskLow}
	}

	amount := in.Transaction.Amount
	if amount%r.unit == 0 && amount >= r.minimum {
		return Verdict{
			RiskLevel: avoidance.RiskMedium,
			Warnings: []string{
				fmt.Sprintf("suspiciously round amount (%s) between connected parties",
					transaction.FormatNaira(amount)),
			},
			TaxActReferences: roundNumberReferences,
		}
	}
	return Verdict{RiskLevel: avoidance.RiskLow}
}
