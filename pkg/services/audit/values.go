package audit

import (
	"fmt"
	"math"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// checkValues reconciles the invoice's gross total with the receipt term's
// total. When the receipt total instead matches the invoice's liquid (post
// retention) total, the receipt was filled with the net amount, a critical
// filling error. Any other divergence is an unexplained warning.
func checkValues(bundle domain.DocumentBundle, settings Settings) *domain.Finding {
	invoice := bundle.Invoice
	receipt := bundle.Receipt
	if !invoice.Found || !receipt.Found || invoice.GrossValue == nil || receipt.TotalValue == nil {
		return nil
	}

	gross := *invoice.GrossValue
	total := *receipt.TotalValue

	const title = "Gross value reconciliation"
	const description = "Checks that the receipt term total matches the invoice's gross total."

	if math.Abs(gross-total) < settings.MoneyTolerance {
		return &domain.Finding{
			ID:          "value-check-gross",
			Title:       title,
			Description: description,
			Status:      domain.StatusPass,
			Details: fmt.Sprintf("Invoice gross total %s matches receipt term total %s.",
				formatMoney(gross), formatMoney(total)),
		}
	}

	if invoice.LiquidValue != nil && math.Abs(*invoice.LiquidValue-total) < settings.MoneyTolerance {
		return &domain.Finding{
			ID:          "value-check-gross",
			Title:       title,
			Description: description,
			Status:      domain.StatusFail,
			Details: fmt.Sprintf("The receipt term was filled with the net amount %s "+
				"instead of the gross amount %s.", formatMoney(total), formatMoney(gross)),
			Recommendation: "Correct the receipt term so that it reflects the " +
				"invoice's gross total; retentions must not be deducted on the receipt.",
		}
	}

	return &domain.Finding{
		ID:          "value-check-gross",
		Title:       title,
		Description: description,
		Status:      domain.StatusWarning,
		Details: fmt.Sprintf("Invoice gross total %s diverges from receipt term total %s "+
			"for no identifiable reason.", formatMoney(gross), formatMoney(total)),
		Recommendation: "Check both documents for typos and confirm whether the " +
			"billing covers the invoice only partially.",
	}
}
