package risk

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/jothamO/prism-app-sub003/internal/compliance/resolver"
	"github.com/jothamO/prism-app-sub003/internal/domain/avoidance"
)

// Recommendations derived from the final risk level
const (
	RecommendationLow    = "No action required."
	RecommendationMedium = "Review transaction details and ensure proper documentation."
	RecommendationHigh   = "Immediate review required. Verify arm's length pricing and proper classification."
)

// Evaluator runs the rule set and aggregates verdicts. Rules have no
// cross-transaction dependency, so batches are evaluated in parallel through
// the worker pool while preserving input order.
type Evaluator struct {
	rules    []Rule
	resolver *resolver.Resolver
	pool     *ants.Pool
	logger   *slog.Logger
}

// NewEvaluator creates an evaluator backed by a worker pool of the given size
func NewEvaluator(rules []Rule, res *resolver.Resolver, poolSize int, logger *slog.Logger) (*Evaluator, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		rules:    rules,
		resolver: res,
		pool:     pool,
		logger:   logger,
	}, nil
}

// Release shuts down the worker pool
func (e *Evaluator) Release() {
	e.pool.Release()
}

// Evaluate runs every rule against one transaction and aggregates: the final
// risk level is the ordinal maximum across rules, warnings and references are
// deduplicated unions, and the recommendation derives from the final level.
func (e *Evaluator) Evaluate(in Input) *avoidance.Check {
	check := &avoidance.Check{
		TransactionID:    in.Transaction.ID,
		RiskLevel:        avoidance.RiskLow,
		Warnings:         []string{},
		TaxActReferences: []string{},
		ConnectedParty:   in.Match,
	}

	seenWarnings := make(map[string]struct{})
	seenReferences := make(map[string]struct{})

	for _, rule := range e.rules {
		verdict := rule.Evaluate(in)
		check.RiskLevel = avoidance.MaxRisk(check.RiskLevel, verdict.RiskLevel)

		for _, w := range verdict.Warnings {
			if _, ok := seenWarnings[w]; !ok {
				seenWarnings[w] = struct{}{}
				check.Warnings = append(check.Warnings, w)
			}
		}
		for _, ref := range verdict.TaxActReferences {
			if _, ok := seenReferences[ref]; !ok {
				seenReferences[ref] = struct{}{}
				check.TaxActReferences = append(check.TaxActReferences, ref)
			}
		}
	}

	check.Recommendation = recommendationFor(check.RiskLevel)
	return check
}

// Request is one transaction plus optional counterparty identity fields as
// supplied by the caller
type Request struct {
	Input             Input
	CounterpartyName  string
	CounterpartyTaxID string
}

// EvaluateBatch resolves counterparties and evaluates every item, preserving
// input order. The registry is fetched once per batch rather than once per
// transaction to bound load on the backing store.
func (e *Evaluator) EvaluateBatch(ctx context.Context, accountHolderID uuid.UUID, requests []Request) *avoidance.BatchResult {
	profile := e.resolver.ProfileFor(ctx, accountHolderID)

	results := make([]*avoidance.Check, len(requests))
	var wg sync.WaitGroup

	for i := range requests {
		i := i
		req := &requests[i]

		if req.CounterpartyName != "" || req.CounterpartyTaxID != "" {
			match := profile.Resolve(req.CounterpartyName, req.CounterpartyTaxID)
			req.Input.Match = &match
		}

		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = e.Evaluate(req.Input)
		}
		if err := e.pool.Submit(task); err != nil {
			// Pool exhausted or released: evaluate inline rather than drop
			e.logger.Warn("worker pool submit failed, evaluating inline", "error", err)
			task()
		}
	}
	wg.Wait()

	summary := avoidance.BatchSummary{
		Total:            len(results),
		ResolverDegraded: profile.Degraded,
	}
	for i, check := range results {
		switch check.RiskLevel {
		case avoidance.RiskLow:
			summary.LowRisk++
		case avoidance.RiskMedium:
			summary.MediumRisk++
		case avoidance.RiskHigh:
			summary.HighRisk++
		}
		if m := requests[i].Input.Match; m != nil && m.IsConnected && !requests[i].Input.DeclaredConnected {
			summary.AutoDetectedConnections++
		}
	}

	return &avoidance.BatchResult{
		Results: results,
		Summary: summary,
	}
}

func recommendationFor(level avoidance.RiskLevel) string {
	switch level {
	case avoidance.RiskHigh:
		return RecommendationHigh
	case avoidance.RiskMedium:
		return RecommendationMedium
	default:
		return RecommendationLow
	}
}
