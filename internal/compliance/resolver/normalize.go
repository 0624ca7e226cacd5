package resolver

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// corporateSuffixes are trailing tokens stripped during name normalization so
// that "Acme Trading Ltd" and "ACME TRADING LIMITED" compare equal
var corporateSuffixes = map[string]struct{}{
	"ltd":          {},
	"limited":      {},
	"inc":          {},
	"incorporated": {},
	"plc":          {},
	"llc":          {},
	"corp":         {},
	"corporation":  {},
}

// NormalizeName canonicalizes a counterparty name for comparison: lowercase,
// trailing corporate suffix stripped, punctuation removed, whitespace
// collapsed.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) > 0 {
		last := stripPunctuation(fields[len(fields)-1])
		if _, ok := corporateSuffixes[last]; ok {
			fields = fields[:len(fields)-1]
		}
	}

	out := fields[:0]
	for _, f := range fields {
		if cleaned := stripPunctuation(f); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return strings.Join(out, " ")
}

func stripPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Similarity computes Jaccard similarity over the whitespace token sets of two
// normalized names: intersection size over union size. Identical sets score
// 1.0, disjoint sets 0.0. Tokens of five or more characters within edit
// distance one are treated as equal, which tolerates single-character typos in
// longer name words. Matched tokens pair one-to-one, so the intersection never
// exceeds the smaller set and the result stays within [0, 1].
func Similarity(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}
	sizeA, sizeB := len(tokensA), len(tokensB)

	remaining := make(map[string]struct{}, sizeB)
	for tok := range tokensB {
		remaining[tok] = struct{}{}
	}

	intersection := 0

	// Exact matches pair first so a fuzzy pairing never consumes a token that
	// another word matches exactly
	for tok := range tokensA {
		if _, ok := remaining[tok]; ok {
			delete(remaining, tok)
			delete(tokensA, tok)
			intersection++
		}
	}
	for tok := range tokensA {
		if matched, ok := fuzzyMatch(tok, remaining); ok {
			delete(remaining, matched)
			intersection++
		}
	}

	union := sizeA + sizeB - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func fuzzyMatch(tok string, set map[string]struct{}) (string, bool) {
	if len(tok) < 5 {
		return "", false
	}
	for other := range set {
		if len(other) >= 5 && levenshtein.ComputeDistance(tok, other) <= 1 {
			return other, true
		}
	}
	return "", false
}
