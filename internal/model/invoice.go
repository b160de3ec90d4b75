// Package model defines the core domain types for invoice extraction
// and quality control.
//
// Extraction is inherently lossy: source documents are noisy, partial
// text dumps of PDFs, so nearly every field is optional. Monetary
// quantities use *decimal.Decimal where nil means "not extracted";
// optional strings use the empty string the same way. Absence is an
// expected state, never an error.
package model

import "github.com/shopspring/decimal"

// DefaultCurrency is assumed when no currency can be extracted.
const DefaultCurrency = "EUR"

// AllowedCurrencies lists the ISO codes accepted by validation.
// Extraction does not enforce membership; that is the rule engine's job.
var AllowedCurrencies = []string{"EUR", "USD", "INR"}

// LineItem is one row of a billed product or service.
type LineItem struct {
	Position       *int             `json:"position,omitempty"`
	Description    string           `json:"description,omitempty"`
	ArticleNumber  string           `json:"article_number,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	Unit           string           `json:"unit,omitempty"`
	UnitConversion string           `json:"unit_conversion,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	LineTotal      *decimal.Decimal `json:"line_total,omitempty"`
}

// Invoice is one structured invoice record assembled from a single
// source document. It is constructed once by the extractor and never
// mutated afterwards; the rule engine only reads it.
type Invoice struct {
	InvoiceNumber       string `json:"invoice_number,omitempty"`
	PurchaseOrderNumber string `json:"purchase_order_number,omitempty"`
	InvoiceDate         string `json:"invoice_date,omitempty"`
	DueDate             string `json:"due_date,omitempty"`
	CustomerNumber      string `json:"customer_number,omitempty"`
	EndCustomerNumber   string `json:"end_customer_number,omitempty"`

	SellerName    string `json:"seller_name,omitempty"`
	SellerAddress string `json:"seller_address,omitempty"`
	BuyerName     string `json:"buyer_name,omitempty"`
	BuyerAddress  string `json:"buyer_address,omitempty"`

	DeliveryDate  string `json:"delivery_date,omitempty"`
	DeliveryTerms string `json:"delivery_terms,omitempty"`
	PaymentTerms  string `json:"payment_terms,omitempty"`

	Currency   string           `json:"currency,omitempty"`
	NetTotal   *decimal.Decimal `json:"net_total,omitempty"`
	TaxRate    *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxAmount  *decimal.Decimal `json:"tax_amount,omitempty"`
	GrossTotal *decimal.Decimal `json:"gross_total,omitempty"`

	LineItems []LineItem `json:"line_items,omitempty"`

	Notes      string `json:"notes,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// ID returns the identifier used for reporting: the invoice number,
// else the source filename, else "unknown".
func (inv *Invoice) ID() string {
	if inv.InvoiceNumber != "" {
		return inv.InvoiceNumber
	}
	if inv.SourceFile != "" {
		return inv.SourceFile
	}
	return "unknown"
}

// DuplicateKey identifies an invoice for cross-invoice duplicate
// detection within one validation run. Two invoices collide only when
// all three components are present and equal.
type DuplicateKey struct {
	Number string
	Date   string
	Seller string
}

// Key returns the duplicate key and whether it is complete. Invoices
// missing any component never participate in duplicate detection.
func (inv *Invoice) Key() (DuplicateKey, bool) {
	if inv.InvoiceNumber == "" || inv.InvoiceDate == "" || inv.SellerName == "" {
		return DuplicateKey{}, false
	}
	return DuplicateKey{
		Number: inv.InvoiceNumber,
		Date:   inv.InvoiceDate,
		Seller: inv.SellerName,
	}, true
}
