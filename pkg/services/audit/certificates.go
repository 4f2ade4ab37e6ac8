package audit

import (
	"fmt"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// checkCertificates verifies that each of the five SICAF debt-clearance
// certificates was still valid on the receipt term's signature date. Without
// a SICAF record, a receipt term and a signature date the cross-check cannot
// run and degrades to a warning.
func checkCertificates(bundle domain.DocumentBundle, _ Settings) *domain.Finding {
	const title = "SICAF certificate validity"
	const description = "Checks that every SICAF debt-clearance certificate " +
		"was valid on the receipt term's signature date."

	if !bundle.Certificate.Found || !bundle.Receipt.Found || bundle.Receipt.SignatureDate == nil {
		return &domain.Finding{
			ID:          "sicaf-missing",
			Title:       title,
			Description: description,
			Status:      domain.StatusWarning,
			Details: "The cross-check could not run: the SICAF record, the " +
				"receipt term or its signature date was not found.",
			Recommendation: "Supply the SICAF registration report and a signed " +
				"receipt term, then run the audit again.",
		}
	}

	signature := *bundle.Receipt.SignatureDate
	overall := domain.StatusPass
	subs := make([]domain.SubFinding, 0, len(domain.CertificateKinds))

	for _, kind := range domain.CertificateKinds {
		validity := bundle.Certificate.Validity[kind]
		switch {
		case validity == nil:
			overall = overall.Worst(domain.StatusFail)
			subs = append(subs, domain.SubFinding{
				Label:   string(kind),
				Status:  domain.StatusFail,
				Details: "validity date not found",
			})
		case validity.Before(signature):
			overall = overall.Worst(domain.StatusFail)
			subs = append(subs, domain.SubFinding{
				Label:   string(kind),
				Status:  domain.StatusFail,
				Details: fmt.Sprintf("expired: valid until %s", formatDate(*validity)),
			})
		default:
			subs = append(subs, domain.SubFinding{
				Label:   string(kind),
				Status:  domain.StatusPass,
				Details: fmt.Sprintf("valid until %s", formatDate(*validity)),
			})
		}
	}

	finding := &domain.Finding{
		ID:          "sicaf-detailed",
		Title:       title,
		Description: description,
		Status:      overall,
		Details:     fmt.Sprintf("Reference date: receipt term signed on %s.", formatDate(signature)),
		SubFindings: subs,
	}
	if overall == domain.StatusFail {
		finding.Recommendation = "At least one certificate was missing or expired " +
			"on the signature date; request an updated SICAF report from the supplier."
	}
	return finding
}
