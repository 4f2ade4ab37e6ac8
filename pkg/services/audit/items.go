package audit

import (
	"strings"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// itemGroup aggregates every line item sharing one key. The description kept
// is the longest one seen for the key, which tends to be the least truncated.
type itemGroup struct {
	key         string
	description string
	quantity    float64
}

// groupKey derives the aggregation key for a line item: the normalized part
// number when a usable one was extracted, otherwise the normalized prefix of
// the description.
func groupKey(item domain.LineItem, settings Settings) string {
	if len(item.PartNumber) > settings.PartNumberKeyMinLen {
		if key := normalizeKey(item.PartNumber); key != "" {
			return key
		}
	}
	desc := []rune(item.Description)
	if len(desc) > settings.DescriptionKeyLen {
		desc = desc[:settings.DescriptionKeyLen]
	}
	return normalizeKey(string(desc))
}

// aggregateItems groups line items by key, summing quantities. Group order
// follows the first appearance of each key in the input.
func aggregateItems(items []domain.LineItem, settings Settings) []*itemGroup {
	index := map[string]*itemGroup{}
	var groups []*itemGroup

	for _, item := range items {
		key := groupKey(item, settings)
		g, ok := index[key]
		if !ok {
			g = &itemGroup{key: key}
			index[key] = g
			groups = append(groups, g)
		}
		g.quantity += item.Quantity
		if len(item.Description) > len(g.description) {
			g.description = item.Description
		}
	}

	return groups
}

// findStockGroup locates the stock-entry group for an invoice group. An exact
// key match always wins; only when the key is absent does the fuzzy fallback
// run, accepting the first stock group whose description contains any
// sufficiently long word of the invoice description.
func findStockGroup(invoice *itemGroup, stockGroups []*itemGroup, settings Settings) *itemGroup {
	for _, g := range stockGroups {
		if g.key == invoice.key {
			return g
		}
	}

	tokens := descriptionTokens(invoice.description, settings)
	for _, g := range stockGroups {
		desc := strings.ToLower(g.description)
		for _, token := range tokens {
			if strings.Contains(desc, token) {
				return g
			}
		}
	}

	return nil
}

func descriptionTokens(description string, settings Settings) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(description)) {
		if len([]rune(word)) > settings.FuzzyTokenMinLen {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
