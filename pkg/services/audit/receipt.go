package audit

import (
	"fmt"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// checkReceiptAcceptance verifies that the receipt term records a definitive
// acceptance rather than a provisional or partial one.
func checkReceiptAcceptance(bundle domain.DocumentBundle, _ Settings) *domain.Finding {
	if !bundle.Receipt.Found {
		return nil
	}

	const title = "Definitive acceptance"
	const description = "Checks that the receipt term records a definitive acceptance."

	if bundle.Receipt.IsDefinitive {
		return &domain.Finding{
			ID:          "tr-definitive",
			Title:       title,
			Description: description,
			Status:      domain.StatusPass,
			Details:     "The receipt term uses definitive acceptance language.",
		}
	}
	return &domain.Finding{
		ID:          "tr-definitive",
		Title:       title,
		Description: description,
		Status:      domain.StatusFail,
		Details:     "The receipt term uses provisional or partial acceptance language.",
		Recommendation: "Return the receipt term to the receiving commission so it " +
			"can be reissued with a definitive acceptance.",
	}
}

// checkContractYear flags a receiving commission whose designation bulletin
// predates the contract's own start year. The rule has no explicit pass path;
// a consistent pair of dates produces no finding.
func checkContractYear(bundle domain.DocumentBundle, _ Settings) *domain.Finding {
	receipt := bundle.Receipt
	if !receipt.Found || receipt.BulletinDate == nil || receipt.ContractStartYear == nil {
		return nil
	}

	bulletinYear := receipt.BulletinDate.Year()
	if bulletinYear >= *receipt.ContractStartYear {
		return nil
	}

	return &domain.Finding{
		ID:          "contract-date",
		Title:       "Commission designation date",
		Description: "Checks that the receiving commission's mandate does not predate the contract.",
		Status:      domain.StatusFail,
		Details: fmt.Sprintf("The designation bulletin is from %d, but the contract "+
			"starts in %d.", bulletinYear, *receipt.ContractStartYear),
		Recommendation: "Verify the designation of the receiving commission; a " +
			"commission cannot be designated before the contract it receives for exists.",
	}
}
