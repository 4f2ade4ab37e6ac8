package audit

import (
	"testing"
	"time"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func money(v float64) *float64 { return &v }

func year(v int) *int { return &v }

// consistentBundle is a bundle that passes every rule: matching CNPJs,
// certificates valid past the signature date, definitive acceptance, matching
// totals and a stock-entry report mirroring the invoice items.
func consistentBundle() domain.DocumentBundle {
	return domain.DocumentBundle{
		Certificate: domain.CertificateRecord{
			Found: true,
			TaxID: "12.345.678/0001-99",
			Validity: map[domain.CertificateKind]*time.Time{
				domain.CertificateFederal:   date(2024, time.December, 31),
				domain.CertificateFGTS:      date(2024, time.December, 31),
				domain.CertificateLabor:     date(2024, time.December, 31),
				domain.CertificateState:     date(2024, time.December, 31),
				domain.CertificateMunicipal: date(2024, time.December, 31),
			},
		},
		Receipt: domain.ReceiptRecord{
			Found:             true,
			TaxID:             "12345678000199",
			SignatureDate:     date(2024, time.March, 10),
			IsDefinitive:      true,
			BulletinDate:      date(2024, time.February, 1),
			ContractStartYear: year(2023),
			TotalValue:        money(1000.00),
			ContractNumber:    "12/2023",
		},
		Invoice: domain.InvoiceRecord{
			Found:        true,
			Number:       "4711",
			SupplierName: "ACME COMERCIO LTDA",
			TaxID:        "12.345.678/0001-99",
			EmissionDate: date(2024, time.March, 1),
			GrossValue:   money(1000.00),
			IsMaterial:   true,
			Items:        []domain.LineItem{
				{Description: "CABO DE REDE CAT5E AZUL", PartNumber: "PN1", Quantity: 10, Unit: "UN"},
			},
		},
		Billing: domain.BillingReportRecord{
			Found:       true,
			TotalValue:  money(1000.00),
			Commitments: []domain.Commitment{
				{CommitmentID: "2024NE000123", ExpenseNatureCode: "339030", Value: 1000.00},
			},
		},
		StockEntry: domain.StockEntryRecord{
			Found: true,
			Items: []domain.LineItem{
				{Description: "CABO DE REDE CAT5E AZUL", PartNumber: "PN1", Quantity: 10, Unit: "UN"},
			},
		},
	}
}

func findingByID(t *testing.T, findings []domain.Finding, id string) domain.Finding {
	t.Helper()
	for _, f := range findings {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("no finding with id %q in %+v", id, findings)
	return domain.Finding{}
}

func TestEvaluate_ConsistentBundle(t *testing.T) {
	findings := Evaluate(consistentBundle(), DefaultSettings())

	var ids []string
	for _, f := range findings {
		ids = append(ids, f.ID)
		assert.Equal(t, domain.StatusPass, f.Status, "finding %s", f.ID)
		assert.Empty(t, f.Recommendation, "finding %s", f.ID)
	}

	// Silent rules (document guard, contract year, expense nature) emit
	// nothing on a clean bundle; the rest keep their fixed order.
	assert.Equal(t, []string{
		"sicaf-detailed",
		"cnpj-match",
		"tr-definitive",
		"value-check-gross",
		"rmm-check-detailed",
	}, ids)
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	bundle := consistentBundle()
	bundle.Invoice.TaxID = "99.999.999/0001-99"
	bundle.Invoice.PossibleTaxIDs = []string{"11111111000111", "12.345.678/0001-99"}
	bundle.Receipt.IsDefinitive = false
	bundle.StockEntry.Items[0].Quantity = 7

	first := Evaluate(bundle, DefaultSettings())
	second := Evaluate(bundle, DefaultSettings())
	assert.Equal(t, first, second)
}

func TestEvaluate_DoesNotMutateCallerBundle(t *testing.T) {
	bundle := consistentBundle()
	bundle.Invoice.TaxID = "99.999.999/0001-99"
	bundle.Invoice.PossibleTaxIDs = []string{"12.345.678/0001-99"}

	Evaluate(bundle, DefaultSettings())

	assert.Equal(t, "99.999.999/0001-99", bundle.Invoice.TaxID)
}

func TestReconcileInvoiceTaxID(t *testing.T) {
	t.Run("replaces primary with matching candidate", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Invoice.TaxID = "99.999.999/0001-99"
		bundle.Invoice.PossibleTaxIDs = []string{"12.345.678/0001-99"}

		corrected := reconcileInvoiceTaxID(bundle)

		assert.Equal(t, "12.345.678/0001-99", corrected.Invoice.TaxID)
	})

	t.Run("is idempotent", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Invoice.TaxID = "99.999.999/0001-99"
		bundle.Invoice.PossibleTaxIDs = []string{"12.345.678/0001-99"}

		once := reconcileInvoiceTaxID(bundle)
		twice := reconcileInvoiceTaxID(once)

		assert.Equal(t, once, twice)
	})

	t.Run("leaves matching identifiers alone", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Invoice.PossibleTaxIDs = []string{"99.999.999/0001-99"}

		corrected := reconcileInvoiceTaxID(bundle)

		assert.Equal(t, bundle.Invoice.TaxID, corrected.Invoice.TaxID)
	})
}

func TestCheckDocumentTypes(t *testing.T) {
	t.Run("silent when the mapping is right", func(t *testing.T) {
		assert.Nil(t, checkDocumentTypes(consistentBundle(), DefaultSettings()))
	})

	t.Run("fails when the note slot holds an invoice", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.AdminNote.WrongDocumentDetected = true

		findings := Evaluate(bundle, DefaultSettings())

		require.NotEmpty(t, findings)
		assert.Equal(t, "doc-validation-info-admin", findings[0].ID)
		assert.Equal(t, domain.StatusFail, findings[0].Status)
		assert.NotEmpty(t, findings[0].Recommendation)
	})
}

func TestCheckTaxIDConsistency(t *testing.T) {
	t.Run("punctuation does not matter", func(t *testing.T) {
		bundle := consistentBundle()
		f := findingByID(t, Evaluate(bundle, DefaultSettings()), "cnpj-match")

		assert.Equal(t, domain.StatusPass, f.Status)
		assert.Contains(t, f.Details, "12345678000199")
	})

	t.Run("diverging identifiers fail listing every source", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Certificate.TaxID = ""
		bundle.Invoice.TaxID = "11.111.111/0001-11"
		bundle.Receipt.TaxID = "22.222.222/0001-22"

		f := findingByID(t, Evaluate(bundle, DefaultSettings()), "cnpj-match")

		assert.Equal(t, domain.StatusFail, f.Status)
		assert.Contains(t, f.Details, "Nota Fiscal: 11.111.111/0001-11")
		assert.Contains(t, f.Details, "Termo de Recebimento: 22.222.222/0001-22")
	})

	t.Run("no identifiers anywhere stays silent", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Certificate.TaxID = ""
		bundle.Invoice.TaxID = ""
		bundle.Receipt.TaxID = ""

		for _, f := range Evaluate(bundle, DefaultSettings()) {
			assert.NotEqual(t, "cnpj-match", f.ID)
		}
	})
}

func TestCheckReceiptAcceptance(t *testing.T) {
	t.Run("provisional acceptance fails", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Receipt.IsDefinitive = false

		f := findingByID(t, Evaluate(bundle, DefaultSettings()), "tr-definitive")

		assert.Equal(t, domain.StatusFail, f.Status)
		assert.NotEmpty(t, f.Recommendation)
	})

	t.Run("silent without a receipt term", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Receipt = domain.ReceiptRecord{}

		assert.Nil(t, checkReceiptAcceptance(bundle, DefaultSettings()))
	})
}

func TestCheckValues(t *testing.T) {
	settings := DefaultSettings()

	t.Run("difference inside the tolerance passes", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Invoice.GrossValue = money(1000.00)
		bundle.Receipt.TotalValue = money(999.97)

		f := findingByID(t, Evaluate(bundle, settings), "value-check-gross")
		assert.Equal(t, domain.StatusPass, f.Status)
	})

	t.Run("difference of the full tolerance is a mismatch", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Invoice.GrossValue = money(500.05)
		bundle.Receipt.TotalValue = money(500.00)

		f := findingByID(t, Evaluate(bundle, settings), "value-check-gross")
		assert.Equal(t, domain.StatusWarning, f.Status)
	})

	t.Run("difference just under the tolerance passes", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Invoice.GrossValue = money(1000.049999)
		bundle.Receipt.TotalValue = money(1000.00)

		f := findingByID(t, Evaluate(bundle, settings), "value-check-gross")
		assert.Equal(t, domain.StatusPass, f.Status)
	})

	t.Run("receipt filled with the net amount is a critical error", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Invoice.GrossValue = money(1000.00)
		bundle.Invoice.LiquidValue = money(950.00)
		bundle.Receipt.TotalValue = money(950.00)

		f := findingByID(t, Evaluate(bundle, settings), "value-check-gross")

		assert.Equal(t, domain.StatusFail, f.Status)
		assert.Contains(t, f.Details, "net amount")
		assert.NotEmpty(t, f.Recommendation)
	})

	t.Run("silent when a total is missing", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Receipt.TotalValue = nil

		assert.Nil(t, checkValues(bundle, settings))
	})
}

func TestCheckContractYear(t *testing.T) {
	t.Run("bulletin predating the contract fails", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Receipt.BulletinDate = date(2022, time.June, 15)
		bundle.Receipt.ContractStartYear = year(2023)

		f := findingByID(t, Evaluate(bundle, DefaultSettings()), "contract-date")

		assert.Equal(t, domain.StatusFail, f.Status)
		assert.Contains(t, f.Details, "2022")
		assert.Contains(t, f.Details, "2023")
	})

	t.Run("consistent dates stay silent", func(t *testing.T) {
		assert.Nil(t, checkContractYear(consistentBundle(), DefaultSettings()))
	})

	t.Run("missing inputs stay silent", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Receipt.BulletinDate = nil

		assert.Nil(t, checkContractYear(bundle, DefaultSettings()))
	})
}
