// Package invoiceqc provides a public API for extracting and
// validating invoice data.
//
// The package exposes the core types plus two-stage helpers: extract
// structured invoices from text, then validate the batch.
//
// Example usage:
//
//	inv := invoiceqc.ExtractInvoice(text, "invoice.pdf")
//	report := invoiceqc.ValidateInvoices([]*invoiceqc.Invoice{inv})
//	fmt.Println(report.Summary.InvalidInvoices)
package invoiceqc

import "github.com/rezonia/invoice-qc/internal/model"

// Re-export core types for public API
type (
	Invoice           = model.Invoice
	LineItem          = model.LineItem
	ValidationResult  = model.ValidationResult
	ValidationSummary = model.ValidationSummary
	Report            = model.Report
)

// Re-export error types
type (
	ParseError = model.ParseError
	BatchError = model.BatchError
)

// DefaultCurrency is assumed when no currency is found in the text.
const DefaultCurrency = model.DefaultCurrency
