package extract

import (
	"context"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// DocumentKind names the slot a raw document is expected to fill.
type DocumentKind string

const (
	KindCertificate DocumentKind = "certificate"
	KindReceipt     DocumentKind = "receipt"
	KindInvoice     DocumentKind = "invoice"
	KindBilling     DocumentKind = "billing_report"
	KindStockEntry  DocumentKind = "stock_entry"
	KindAdminNote   DocumentKind = "administrative_note"
)

// Document is one raw file handed to the extraction service.
type Document struct {
	Name      string
	Kind      DocumentKind
	MediaType string
	Content   []byte
}

// Extractor is the document-understanding collaborator that turns raw files
// into a structured bundle. Sections it cannot extract come back with Found
// set to false; only a transport or decode failure is an error, and that
// error is terminal for the whole audit session. Retry and timeout policy
// belong to the caller, via ctx.
type Extractor interface {
	ExtractBundle(ctx context.Context, docs []Document) (domain.DocumentBundle, error)
}
