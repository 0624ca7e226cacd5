package reconciler

import "strings"

// Keyword tables for narration classification. Held as data so they can be
// unit-tested and tuned independently of the matching algorithm.
var (
	// levyNarrationKeywords identify the electronic money transfer levy
	levyNarrationKeywords = []string{
		"emtl",
		"electronic money transfer levy",
		"e-levy",
		"transfer levy",
		"electronic levy",
	}

	// stampDutyNarrationKeywords identify stamp duty charges
	stampDutyNarrationKeywords = []string{
		"stamp duty",
		"stamp",
		"duty",
	}

	// salaryNarrationKeywords identify salary payments, which are exempt
	// from the transfer levy
	salaryNarrationKeywords = []string{
		"salary",
		"wage",
		"payroll",
		"staff payment",
		"employee",
		"salaries",
	}

	// selfTransferNarrationKeywords identify transfers between the account
	// holder's own accounts, which are exempt from the transfer levy
	selfTransferNarrationKeywords = []string{
		"self transfer",
		"own account",
		"internal transfer",
		"between accounts",
		"same customer",
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
