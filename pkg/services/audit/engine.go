package audit

import (
	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

type checkFunc func(domain.DocumentBundle, Settings) *domain.Finding

// Evaluate audits a document bundle and returns its findings. The rule order
// is fixed: presentation layers key their numbering on finding position, so
// evaluating the same bundle twice must yield identical lists. The caller's
// bundle is never modified; the identifier pre-pass operates on a value copy.
func Evaluate(bundle domain.DocumentBundle, settings Settings) []domain.Finding {
	bundle = reconcileInvoiceTaxID(bundle)

	checks := []checkFunc{
		checkDocumentTypes,
		checkCertificates,
		checkTaxIDConsistency,
		checkReceiptAcceptance,
		checkValues,
		checkContractYear,
		checkStockEntry,
		checkExpenseNature,
	}

	findings := make([]domain.Finding, 0, len(checks))
	for _, check := range checks {
		if f := check(bundle, settings); f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

// reconcileInvoiceTaxID is the single pre-pass correction: when the invoice's
// primary CNPJ disagrees with the receipt term's, but one of the invoice's
// alternative CNPJ candidates matches it, the candidate becomes the primary.
// Idempotent: a second application finds the identifiers already equal.
func reconcileInvoiceTaxID(bundle domain.DocumentBundle) domain.DocumentBundle {
	if !bundle.Invoice.Found || !bundle.Receipt.Found {
		return bundle
	}

	receiptID := normalizeTaxID(bundle.Receipt.TaxID)
	if receiptID == "" || normalizeTaxID(bundle.Invoice.TaxID) == receiptID {
		return bundle
	}

	for _, candidate := range bundle.Invoice.PossibleTaxIDs {
		if normalizeTaxID(candidate) == receiptID {
			bundle.Invoice.TaxID = candidate
			break
		}
	}
	return bundle
}

// checkDocumentTypes flags the session when the file expected to hold the
// administrative justification was detected as an invoice. Rules that consume
// the administrative note re-check the flag themselves instead of relying on
// this finding.
func checkDocumentTypes(bundle domain.DocumentBundle, _ Settings) *domain.Finding {
	if !bundle.AdminNote.WrongDocumentDetected {
		return nil
	}
	return &domain.Finding{
		ID:          "doc-validation-info-admin",
		Title:       "Document type validation",
		Description: "Checks whether each uploaded file matches its expected document type.",
		Status:      domain.StatusFail,
		Details: "The file expected to contain an administrative justification " +
			"was detected as an invoice.",
		Recommendation: "Review the file mapping and upload the administrative " +
			"justification in the correct slot.",
	}
}
