package api

import (
	"fmt"
	"strings"
	"time"
)

// Date marshals as an ISO calendar date (YYYY-MM-DD), the wire format used by
// the extraction service.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

type LineItem struct {
	Description string  `json:"description"`
	PartNumber  string  `json:"part_number,omitempty"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
}

type CertificateRecord struct {
	Found    bool             `json:"found"`
	TaxID    string           `json:"tax_id,omitempty"`
	Validity map[string]*Date `json:"validity,omitempty"`
}

type ReceiptRecord struct {
	Found             bool     `json:"found"`
	TaxID             string   `json:"tax_id,omitempty"`
	SignatureDate     *Date    `json:"signature_date,omitempty"`
	IsDefinitive      bool     `json:"is_definitive"`
	BulletinDate      *Date    `json:"bulletin_date,omitempty"`
	ContractStartYear *int     `json:"contract_start_year,omitempty"`
	TotalValue        *float64 `json:"total_value,omitempty"`
	ContractNumber    string   `json:"contract_number,omitempty"`
}

type InvoiceRecord struct {
	Found          bool       `json:"found"`
	Number         string     `json:"number,omitempty"`
	SupplierName   string     `json:"supplier_name,omitempty"`
	TaxID          string     `json:"tax_id,omitempty"`
	PossibleTaxIDs []string   `json:"possible_tax_ids,omitempty"`
	EmissionDate   *Date      `json:"emission_date,omitempty"`
	GrossValue     *float64   `json:"gross_value,omitempty"`
	LiquidValue    *float64   `json:"liquid_value,omitempty"`
	IsMaterial     bool       `json:"is_material"`
	IsService      bool       `json:"is_service"`
	Items          []LineItem `json:"items,omitempty"`
}

type Commitment struct {
	CommitmentID      string  `json:"commitment_id"`
	ExpenseNatureCode string  `json:"expense_nature_code"`
	Value             float64 `json:"value"`
}

type BillingReportRecord struct {
	Found        bool         `json:"found"`
	EmissionDate *Date        `json:"emission_date,omitempty"`
	ArrivalDate  *Date        `json:"arrival_date,omitempty"`
	DueDate      *Date        `json:"due_date,omitempty"`
	TotalValue   *float64     `json:"total_value,omitempty"`
	Commitments  []Commitment `json:"commitments,omitempty"`
}

type StockEntryRecord struct {
	Found bool       `json:"found"`
	Items []LineItem `json:"items,omitempty"`
}

type AdministrativeNoteRecord struct {
	Found                       bool   `json:"found"`
	JustificationText           string `json:"justification_text,omitempty"`
	SubstitutesStockEntry       bool   `json:"substitutes_stock_entry"`
	JustifiesServiceExpenseCode bool   `json:"justifies_service_expense_code"`
	WrongDocumentDetected       bool   `json:"wrong_document_detected"`
}

type DocumentBundle struct {
	Certificate CertificateRecord        `json:"certificate"`
	Receipt     ReceiptRecord            `json:"receipt"`
	Invoice     InvoiceRecord            `json:"invoice"`
	Billing     BillingReportRecord      `json:"billing_report"`
	StockEntry  StockEntryRecord         `json:"stock_entry"`
	AdminNote   AdministrativeNoteRecord `json:"administrative_note"`
}
