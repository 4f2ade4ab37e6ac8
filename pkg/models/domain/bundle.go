package domain

import "time"

// CertificateKind identifies one of the five debt-clearance certificates
// aggregated by a SICAF vendor-registration record.
type CertificateKind string

const (
	CertificateFederal   CertificateKind = "Receita Federal"
	CertificateFGTS      CertificateKind = "FGTS"
	CertificateLabor     CertificateKind = "Trabalhista"
	CertificateState     CertificateKind = "Estadual/Distrital"
	CertificateMunicipal CertificateKind = "Municipal"
)

// CertificateKinds lists the certificate kinds in the order they are reported.
var CertificateKinds = []CertificateKind{
	CertificateFederal,
	CertificateFGTS,
	CertificateLabor,
	CertificateState,
	CertificateMunicipal,
}

// LineItem is a single line of an invoice or a stock-entry report.
type LineItem struct {
	Description string
	PartNumber  string // empty when not extracted
	Quantity    float64
	Unit        string // empty when not extracted
}

// CertificateRecord is the SICAF vendor-registration certificate section.
type CertificateRecord struct {
	Found    bool
	TaxID    string
	Validity map[CertificateKind]*time.Time
}

// ReceiptRecord is the formal receipt term (termo de recebimento) section.
// SignatureDate is the reference date for certificate validity checks.
type ReceiptRecord struct {
	Found             bool
	TaxID             string
	SignatureDate     *time.Time
	IsDefinitive      bool
	BulletinDate      *time.Time
	ContractStartYear *int
	TotalValue        *float64
	ContractNumber    string
}

// InvoiceRecord is the supplier invoice (nota fiscal) section.
// GrossValue is the pre-tax total, LiquidValue the post-retention total.
type InvoiceRecord struct {
	Found          bool
	Number         string
	SupplierName   string
	TaxID          string
	PossibleTaxIDs []string
	EmissionDate   *time.Time
	GrossValue     *float64
	LiquidValue    *float64
	IsMaterial     bool
	IsService      bool
	Items          []LineItem
}

// Commitment is a budget commitment funding a billed amount.
type Commitment struct {
	CommitmentID      string
	ExpenseNatureCode string
	Value             float64
}

// BillingReportRecord is the billing report section; TotalValue is the
// authoritative billed total.
type BillingReportRecord struct {
	Found        bool
	EmissionDate *time.Time
	ArrivalDate  *time.Time
	DueDate      *time.Time
	TotalValue   *float64
	Commitments  []Commitment
}

// StockEntryRecord is the stock-entry (material movement) report section.
type StockEntryRecord struct {
	Found bool
	Items []LineItem
}

// AdministrativeNoteRecord is the free-form administrative justification
// section. WrongDocumentDetected is set when the file mapped to this record
// was actually detected as an invoice.
type AdministrativeNoteRecord struct {
	Found                       bool
	JustificationText           string
	SubstitutesStockEntry       bool
	JustifiesServiceExpenseCode bool
	WrongDocumentDetected       bool
}

// DocumentBundle is the structured output of one extraction session.
// Absent documents are represented with Found set to false, never as errors.
type DocumentBundle struct {
	Certificate CertificateRecord
	Receipt     ReceiptRecord
	Invoice     InvoiceRecord
	Billing     BillingReportRecord
	StockEntry  StockEntryRecord
	AdminNote   AdministrativeNoteRecord
}
