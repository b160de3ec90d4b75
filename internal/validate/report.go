package validate

import "github.com/rezonia/invoice-qc/internal/model"

// ValidateInvoices runs the full rule set over an ordered batch and
// aggregates the results. The duplicate-key set is created fresh for
// the call and discarded afterwards, so repeated runs over the same
// batch are idempotent. Invoices are processed strictly in input
// order; callers that parallelize extraction must still hand the
// results over as one ordered slice.
func ValidateInvoices(invoices []*model.Invoice) *model.Report {
	engine := NewEngine()

	results := make([]model.ValidationResult, 0, len(invoices))
	for _, inv := range invoices {
		results = append(results, engine.Validate(inv))
	}

	return &model.Report{
		Summary: Summarize(results),
		Results: results,
	}
}

// Summarize folds per-invoice results into batch counts and a
// per-error-code occurrence histogram. Occurrences, not invoices, are
// counted: one invoice contributing the same code twice counts twice.
func Summarize(results []model.ValidationResult) model.ValidationSummary {
	summary := model.ValidationSummary{
		TotalInvoices: len(results),
		ErrorCounts:   make(map[string]int),
	}

	for _, r := range results {
		if r.IsValid {
			summary.ValidInvoices++
		} else {
			summary.InvalidInvoices++
		}
		for _, code := range r.Errors {
			summary.ErrorCounts[code]++
		}
	}

	return summary
}
