package audit

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

const dateLayout = "2006-01-02"

// normalizeTaxID reduces a CNPJ to its digits, so that formatted and raw
// renderings of the same identifier compare equal.
func normalizeTaxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeKey lower-cases a value and strips everything that is not a letter
// or a digit.
func normalizeKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatQuantity renders a quantity without trailing zeroes ("10", "2.5").
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
