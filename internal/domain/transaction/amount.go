package transaction

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNaira renders a kobo amount as a naira string with digit grouping,
// e.g. 5_000 -> "₦50", 1_000_000 -> "₦10,000", 12_345 -> "₦123.45".
// Used for narration-facing reasons and warnings.
func FormatNaira(kobo int64) string {
	sign := ""
	if kobo < 0 {
		sign = "-"
		kobo = -kobo
	}

	whole := kobo / 100
	frac := kobo % 100

	digits := strconv.FormatInt(whole, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	grouped := strings.Join(groups, ",")

	if frac == 0 {
		return fmt.Sprintf("%s₦%s", sign, grouped)
	}
	return fmt.Sprintf("%s₦%s.%02d", sign, grouped, frac)
}
