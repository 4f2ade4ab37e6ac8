package audit

import (
	"fmt"
	"strings"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// checkTaxIDConsistency cross-checks the supplier CNPJ across the invoice,
// the receipt term and the SICAF record. Identifiers differing only by
// punctuation compare equal. When no document carries an identifier the rule
// stays silent: the absence is already reported by the per-document rules.
func checkTaxIDConsistency(bundle domain.DocumentBundle, _ Settings) *domain.Finding {
	sources := []struct {
		label string
		raw   string
	}{
		{"Nota Fiscal", bundle.Invoice.TaxID},
		{"Termo de Recebimento", bundle.Receipt.TaxID},
		{"SICAF", bundle.Certificate.TaxID},
	}

	distinct := map[string]struct{}{}
	var shared string
	var listed []string

	for _, s := range sources {
		norm := normalizeTaxID(s.raw)
		if norm == "" {
			continue
		}
		distinct[norm] = struct{}{}
		shared = norm
		listed = append(listed, fmt.Sprintf("%s: %s", s.label, s.raw))
	}

	const title = "CNPJ consistency"
	const description = "Checks that all documents identify the same supplier CNPJ."

	switch len(distinct) {
	case 0:
		return nil
	case 1:
		return &domain.Finding{
			ID:          "cnpj-match",
			Title:       title,
			Description: description,
			Status:      domain.StatusPass,
			Details:     fmt.Sprintf("All documents reference CNPJ %s.", shared),
		}
	default:
		return &domain.Finding{
			ID:          "cnpj-match",
			Title:       title,
			Description: description,
			Status:      domain.StatusFail,
			Details:     fmt.Sprintf("Documents reference different CNPJs: %s.", strings.Join(listed, "; ")),
			Recommendation: "Confirm which supplier the procurement refers to and " +
				"return the documents carrying the wrong CNPJ for correction.",
		}
	}
}
