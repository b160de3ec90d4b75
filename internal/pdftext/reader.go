// Package pdftext converts PDF documents to plain text for the
// extraction engine. Conversion is best-effort: pages that cannot be
// decoded (scanned images, broken streams) contribute nothing, and
// callers are expected to treat a failed document as empty text rather
// than aborting a batch.
package pdftext

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/rezonia/invoice-qc/internal/model"
)

// IsPDF reports whether the data starts with a PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// FromFile extracts the plain text of all pages, joined with newlines.
func FromFile(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", model.NewParseError(path, "failed to open PDF", err)
	}
	defer f.Close()

	return pagesText(r), nil
}

// FromBytes extracts the plain text of all pages from an in-memory
// document.
func FromBytes(source string, data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", model.NewParseError(source, "failed to read PDF", err)
	}

	return pagesText(r), nil
}

func pagesText(r *pdf.Reader) string {
	var texts []string
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip undecodable pages, keep the rest.
			continue
		}
		texts = append(texts, content)
	}
	return strings.Join(texts, "\n")
}

// Info describes a PDF document without extracting it.
type Info struct {
	Pages int  `json:"pages"`
	Valid bool `json:"valid"`
}

// Inspect reads structural information via pdfcpu with relaxed
// validation. Unreadable input yields a zero Info, not an error.
func Inspect(data []byte) Info {
	conf := pdfcpumodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpumodel.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return Info{}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return Info{}
	}

	return Info{
		Pages: ctx.PageCount,
		Valid: api.ValidateContext(ctx) == nil,
	}
}
