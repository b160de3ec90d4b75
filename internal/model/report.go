package model

// ValidationResult is the outcome of validating a single invoice.
// Errors keep rule-evaluation order and are not deduplicated.
type ValidationResult struct {
	InvoiceID string   `json:"invoice_id"`
	IsValid   bool     `json:"is_valid"`
	Errors    []string `json:"errors"`
}

// ValidationSummary aggregates one batch of validation results.
// ErrorCounts maps each error code to its number of occurrences across
// the batch; an invoice contributing the same code twice counts twice.
type ValidationSummary struct {
	TotalInvoices   int            `json:"total_invoices"`
	ValidInvoices   int            `json:"valid_invoices"`
	InvalidInvoices int            `json:"invalid_invoices"`
	ErrorCounts     map[string]int `json:"error_counts"`
}

// Report is the machine-readable quality report for one batch.
type Report struct {
	Summary ValidationSummary  `json:"summary"`
	Results []ValidationResult `json:"results"`
}
