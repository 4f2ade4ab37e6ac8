package audit

import (
	"fmt"
	"strings"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// checkExpenseNature flags commitments classified under the service expense
// nature code while the invoice covers material. An administrative note that
// is not flagged as a wrong document counts as justification even without the
// explicit justification flag; that permissive default is deliberate.
func checkExpenseNature(bundle domain.DocumentBundle, settings Settings) *domain.Finding {
	billing := bundle.Billing
	if !billing.Found || len(billing.Commitments) == 0 {
		return nil
	}

	var serviceCommitments []string
	for _, c := range billing.Commitments {
		if c.ExpenseNatureCode == settings.ServiceNatureCode {
			serviceCommitments = append(serviceCommitments, c.CommitmentID)
		}
	}
	if len(serviceCommitments) == 0 || !bundle.Invoice.Found || !bundle.Invoice.IsMaterial {
		return nil
	}

	const title = "Expense nature consistency"
	const description = "Checks whether service-classified commitments funding a " +
		"materials invoice are justified."
	listed := strings.Join(serviceCommitments, ", ")

	note := bundle.AdminNote
	switch {
	case note.Found && note.JustifiesServiceExpenseCode && !note.WrongDocumentDetected:
		return &domain.Finding{
			ID:          "nd-check",
			Title:       title,
			Description: description,
			Status:      domain.StatusPass,
			Details: fmt.Sprintf("Commitment(s) %s use the service expense nature code %s; "+
				"the administrative note explicitly justifies it.", listed, settings.ServiceNatureCode),
		}
	case note.Found && !note.WrongDocumentDetected:
		return &domain.Finding{
			ID:          "nd-check",
			Title:       title,
			Description: description,
			Status:      domain.StatusPass,
			Details: fmt.Sprintf("Commitment(s) %s use the service expense nature code %s; "+
				"an administrative note is present and presumed to justify it.", listed, settings.ServiceNatureCode),
		}
	default:
		return &domain.Finding{
			ID:          "nd-check",
			Title:       title,
			Description: description,
			Status:      domain.StatusWarning,
			Details: fmt.Sprintf("Commitment(s) %s use the service expense nature code %s, "+
				"but the invoice covers material.", listed, settings.ServiceNatureCode),
			Recommendation: "Verify whether an administrative note is needed to " +
				"justify funding a materials invoice from a service-classified commitment.",
		}
	}
}
