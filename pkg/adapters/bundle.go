package adapters

import (
	"time"

	"github.com/fisc-tools/doc-audit/pkg/models/api"
	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

func mapDateApiToDomain(d *api.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func mapLineItemsApiToDomain(items []api.LineItem) []domain.LineItem {
	var res []domain.LineItem
	for _, it := range items {
		res = append(res, domain.LineItem{
			Description: it.Description,
			PartNumber:  it.PartNumber,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return res
}

func MapDocumentBundleApiToDomain(b api.DocumentBundle) domain.DocumentBundle {
	validity := make(map[domain.CertificateKind]*time.Time, len(b.Certificate.Validity))
	for kind, date := range b.Certificate.Validity {
		validity[domain.CertificateKind(kind)] = mapDateApiToDomain(date)
	}

	commitments := make([]domain.Commitment, 0, len(b.Billing.Commitments))
	for _, c := range b.Billing.Commitments {
		commitments = append(commitments, domain.Commitment{
			CommitmentID:      c.CommitmentID,
			ExpenseNatureCode: c.ExpenseNatureCode,
			Value:             c.Value,
		})
	}

	return domain.DocumentBundle{
		Certificate: domain.CertificateRecord{
			Found:    b.Certificate.Found,
			TaxID:    b.Certificate.TaxID,
			Validity: validity,
		},
		Receipt: domain.ReceiptRecord{
			Found:             b.Receipt.Found,
			TaxID:             b.Receipt.TaxID,
			SignatureDate:     mapDateApiToDomain(b.Receipt.SignatureDate),
			IsDefinitive:      b.Receipt.IsDefinitive,
			BulletinDate:      mapDateApiToDomain(b.Receipt.BulletinDate),
			ContractStartYear: b.Receipt.ContractStartYear,
			TotalValue:        b.Receipt.TotalValue,
			ContractNumber:    b.Receipt.ContractNumber,
		},
		Invoice: domain.InvoiceRecord{
			Found:          b.Invoice.Found,
			Number:         b.Invoice.Number,
			SupplierName:   b.Invoice.SupplierName,
			TaxID:          b.Invoice.TaxID,
			PossibleTaxIDs: b.Invoice.PossibleTaxIDs,
			EmissionDate:   mapDateApiToDomain(b.Invoice.EmissionDate),
			GrossValue:     b.Invoice.GrossValue,
			LiquidValue:    b.Invoice.LiquidValue,
			IsMaterial:     b.Invoice.IsMaterial,
			IsService:      b.Invoice.IsService,
			Items:          mapLineItemsApiToDomain(b.Invoice.Items),
		},
		Billing: domain.BillingReportRecord{
			Found:        b.Billing.Found,
			EmissionDate: mapDateApiToDomain(b.Billing.EmissionDate),
			ArrivalDate:  mapDateApiToDomain(b.Billing.ArrivalDate),
			DueDate:      mapDateApiToDomain(b.Billing.DueDate),
			TotalValue:   b.Billing.TotalValue,
			Commitments:  commitments,
		},
		StockEntry: domain.StockEntryRecord{
			Found: b.StockEntry.Found,
			Items: mapLineItemsApiToDomain(b.StockEntry.Items),
		},
		AdminNote: domain.AdministrativeNoteRecord{
			Found:                       b.AdminNote.Found,
			JustificationText:           b.AdminNote.JustificationText,
			SubstitutesStockEntry:       b.AdminNote.SubstitutesStockEntry,
			JustifiesServiceExpenseCode: b.AdminNote.JustifiesServiceExpenseCode,
			WrongDocumentDetected:       b.AdminNote.WrongDocumentDetected,
		},
	}
}
