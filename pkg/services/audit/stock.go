package audit

import (
	"fmt"
	"math"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

const (
	stockCheckTitle       = "Stock-entry reconciliation"
	stockCheckDescription = "Checks that every material item on the invoice " +
		"was registered on the stock-entry report."
)

// checkStockEntry verifies that a material invoice is backed by a stock-entry
// report, reconciling the two item lists when one exists, or by an
// administrative justification explicitly substituting it.
func checkStockEntry(bundle domain.DocumentBundle, settings Settings) *domain.Finding {
	invoice := bundle.Invoice
	if !invoice.Found {
		return nil
	}

	if invoice.IsService && !invoice.IsMaterial {
		return &domain.Finding{
			ID:          "rmm-check",
			Title:       stockCheckTitle,
			Description: stockCheckDescription,
			Status:      domain.StatusPass,
			Details:     "The invoice covers services only; no stock entry is required.",
		}
	}

	if !invoice.IsMaterial {
		return nil
	}

	if bundle.StockEntry.Found {
		return reconcileStockItems(bundle, settings)
	}

	note := bundle.AdminNote
	if note.Found && note.SubstitutesStockEntry && !note.WrongDocumentDetected {
		return &domain.Finding{
			ID:          "rmm-check",
			Title:       stockCheckTitle,
			Description: stockCheckDescription,
			Status:      domain.StatusPass,
			Details: "No stock-entry report was supplied, but the administrative " +
				"justification explicitly substitutes it.",
		}
	}

	return &domain.Finding{
		ID:          "rmm-check",
		Title:       stockCheckTitle,
		Description: stockCheckDescription,
		Status:      domain.StatusFail,
		Details:     "The invoice covers material, but no stock-entry report or substituting justification was supplied.",
		Recommendation: "Supply the stock-entry report for the invoiced material, " +
			"or an administrative justification for its absence.",
	}
}

// reconcileStockItems aggregates the invoice's and the stock-entry's line
// items and matches the invoice groups against the stock groups, producing
// one sub-finding per invoice group. FAIL dominates WARNING in the overall
// status.
func reconcileStockItems(bundle domain.DocumentBundle, settings Settings) *domain.Finding {
	if len(bundle.Invoice.Items) == 0 {
		return &domain.Finding{
			ID:          "rmm-check-detailed",
			Title:       stockCheckTitle,
			Description: stockCheckDescription,
			Status:      domain.StatusWarning,
			Details:     "A stock-entry report is present, but no item list could be extracted from the invoice.",
			Recommendation: "Reconcile the invoiced items against the stock-entry " +
				"report manually.",
		}
	}

	invoiceGroups := aggregateItems(bundle.Invoice.Items, settings)
	stockGroups := aggregateItems(bundle.StockEntry.Items, settings)

	overall := domain.StatusPass
	subs := make([]domain.SubFinding, 0, len(invoiceGroups))

	for _, group := range invoiceGroups {
		match := findStockGroup(group, stockGroups, settings)
		switch {
		case match == nil:
			overall = overall.Worst(domain.StatusFail)
			subs = append(subs, domain.SubFinding{
				Label:   group.description,
				Status:  domain.StatusFail,
				Details: "item not found in the stock-entry report",
			})
		case math.Abs(group.quantity-match.quantity) < settings.QuantityTolerance:
			subs = append(subs, domain.SubFinding{
				Label:   group.description,
				Status:  domain.StatusPass,
				Details: fmt.Sprintf("quantity %s registered", formatQuantity(group.quantity)),
			})
		default:
			overall = overall.Worst(domain.StatusWarning)
			subs = append(subs, domain.SubFinding{
				Label:  group.description,
				Status: domain.StatusWarning,
				Details: fmt.Sprintf("quantity mismatch: %s vs %s",
					formatQuantity(group.quantity), formatQuantity(match.quantity)),
			})
		}
	}

	finding := &domain.Finding{
		ID:          "rmm-check-detailed",
		Title:       stockCheckTitle,
		Description: stockCheckDescription,
		Status:      overall,
		Details: fmt.Sprintf("%d invoice item group(s) reconciled against the stock-entry report.",
			len(invoiceGroups)),
		SubFindings: subs,
	}
	switch overall {
	case domain.StatusFail:
		finding.Recommendation = "At least one invoiced item is missing from the " +
			"stock-entry report; confirm the material was registered into inventory."
	case domain.StatusWarning:
		finding.Recommendation = "Registered quantities diverge from the invoice; " +
			"confirm the received amounts with the stock controller."
	}
	return finding
}
