package risk

import "strings"

// Keyword tables for avoidance heuristics. Held as data so they can be
// unit-tested and tuned independently of the rules that consume them.
var (
	giftNarrationKeywords = []string{
		"gift",
		"donation",
		"gratuit",
		"free",
		"no charge",
	}

	incomeNarrationKeywords = []string{
		"service",
		"work",
		"contract",
		"project",
		"commission",
		"payment for",
	}

	capitalNarrationKeywords = []string{
		"investment",
		"capital",
		"equity",
		"loan",
		"asset sale",
	}

	revenueNarrationKeywords = []string{
		"recurring",
		"monthly",
		"regular",
		"fee",
		"service charge",
	}
)

// Tax act citations attached by each rule
var (
	connectedPersonReferences = []string{
		"PITA Section 17 (artificial transactions)",
		"CITA Section 22 (artificial or fictitious transactions)",
	}

	giftVsIncomeReferences = []string{
		"PITA Section 3 (income chargeable)",
	}

	capitalVsRevenueReferences = []string{
		"CITA Section 9 (profits chargeable to tax)",
	}

	roundNumberReferences = []string{
		"Income Tax (Transfer Pricing) Regulations 2018",
	}
)

// containsAny reports whether the lowercased narration contains any of the
// given keywords
func containsAny(narration string, keywords []string) bool {
	n := strings.ToLower(narration)
	for _, kw := range keywords {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}
