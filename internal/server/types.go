package server

import (
	"github.com/rezonia/invoice-qc/internal/model"
	"github.com/rezonia/invoice-qc/internal/pdftext"
)

// ExtractResponse is the response for the extract endpoint
type ExtractResponse struct {
	Invoice *model.Invoice `json:"invoice"`
}

// RunResponse is the response for the combined extract-and-validate
// endpoint. The shape matches the batch report files written by the
// CLI so downstream consumers can share one decoder.
type RunResponse struct {
	ExtractedInvoices []*model.Invoice `json:"extracted_invoices"`
	Validation        *model.Report    `json:"validation"`
}

// InfoResponse is the response for the info endpoint
type InfoResponse struct {
	Format string       `json:"format"`
	Size   int          `json:"size"`
	PDF    pdftext.Info `json:"pdf"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
