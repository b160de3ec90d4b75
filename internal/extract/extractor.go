// Package extract implements pattern-based invoice extraction from
// unstructured text. Extraction is total: any input, including the
// empty string, produces an Invoice; unmatched fields stay absent.
package extract

import (
	"strings"

	"github.com/rezonia/invoice-qc/internal/lang"
	"github.com/rezonia/invoice-qc/internal/model"
)

// Document is one unit of batch input: raw text plus the identifier of
// the originating file.
type Document struct {
	Text     string
	SourceID string
}

// Extractor assembles structured invoices from raw text using a
// template profile.
type Extractor struct {
	profile *Profile
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithProfile selects the template profile by ID. Unknown IDs fall
// back to the default profile.
func WithProfile(id string) Option {
	return func(e *Extractor) {
		e.profile = LookupProfile(id)
	}
}

// New creates an extractor using the default template profile unless
// overridden.
func New(opts ...Option) *Extractor {
	e := &Extractor{profile: LookupProfile(DefaultProfileID)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText assembles one Invoice from raw document text. The
// language is detected once and steers which pattern lists are tried
// first; every sub-extractor falls back to absence on a miss, so
// assembly never fails.
func (e *Extractor) ExtractText(text, sourceID string) *model.Invoice {
	p := e.profile
	language := lang.Detect(text)

	inv := &model.Invoice{
		InvoiceNumber:     p.Fields.Find(FieldInvoiceNumber, language, text),
		InvoiceDate:       p.Fields.Find(FieldInvoiceDate, language, text),
		CustomerNumber:    p.Fields.Find(FieldCustomerNumber, language, text),
		EndCustomerNumber: p.Fields.Find(FieldEndCustomerNumber, language, text),
		PaymentTerms:      p.Fields.Find(FieldPaymentTerms, language, text),
		DeliveryTerms:     p.Fields.Find(FieldDeliveryTerms, language, text),
		DeliveryDate:      p.Fields.Find(FieldDeliveryDate, language, text),
		Currency:          p.Fields.Find(FieldCurrency, language, text),
		SourceFile:        sourceID,
	}
	if inv.Currency == "" {
		inv.Currency = model.DefaultCurrency
	}

	t := extractTotals(p, text)
	inv.NetTotal = t.net
	inv.TaxRate = t.rate
	inv.TaxAmount = t.amount
	inv.GrossTotal = t.gross

	pt := extractParties(p, text)
	inv.SellerName = pt.sellerName
	inv.SellerAddress = pt.sellerAddress
	inv.BuyerName = pt.buyerName
	inv.BuyerAddress = pt.buyerAddress

	inv.PurchaseOrderNumber = extractPurchaseOrder(p, text)
	inv.LineItems = extractLineItems(p, text)

	return inv
}

// ExtractAll assembles one Invoice per document, preserving input
// order.
func (e *Extractor) ExtractAll(docs []Document) []*model.Invoice {
	invoices := make([]*model.Invoice, 0, len(docs))
	for _, doc := range docs {
		invoices = append(invoices, e.ExtractText(doc.Text, doc.SourceID))
	}
	return invoices
}

// extractPurchaseOrder joins all non-empty captures of the profile's
// purchase-order pattern with a space, so an order reference and its
// "on behalf of" suffix land in one field.
func extractPurchaseOrder(p *Profile, text string) string {
	m := p.PurchaseOrder.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	var parts []string
	for _, g := range m[1:] {
		if g != "" {
			parts = append(parts, g)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
