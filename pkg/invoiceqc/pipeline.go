package invoiceqc

import (
	"github.com/rezonia/invoice-qc/internal/extract"
	"github.com/rezonia/invoice-qc/internal/pdftext"
	"github.com/rezonia/invoice-qc/internal/validate"
)

// Document is one unit of input text with its source identifier.
type Document = extract.Document

// ExtractInvoice extracts a single invoice from already decoded text.
// It never fails; input that matches nothing yields an invoice with
// only the source file set.
func ExtractInvoice(text, sourceID string) *Invoice {
	return extract.New().ExtractText(text, sourceID)
}

// ExtractInvoices extracts every document in order. The result has
// one invoice per document.
func ExtractInvoices(docs []Document) []*Invoice {
	return extract.New().ExtractAll(docs)
}

// ExtractPDF decodes a PDF's text layer and extracts an invoice from
// it.
func ExtractPDF(sourceID string, data []byte) (*Invoice, error) {
	text, err := pdftext.FromBytes(sourceID, data)
	if err != nil {
		return nil, err
	}
	return ExtractInvoice(text, sourceID), nil
}

// ValidateInvoices runs the full rule set over a batch. Duplicate
// detection is scoped to the batch, so validating the same slice
// twice yields identical reports.
func ValidateInvoices(invoices []*Invoice) *Report {
	return validate.ValidateInvoices(invoices)
}

// Run executes the full pipeline over a set of documents.
func Run(docs []Document) ([]*Invoice, *Report) {
	invoices := ExtractInvoices(docs)
	return invoices, ValidateInvoices(invoices)
}
