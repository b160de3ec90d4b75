package extract

import (
	"regexp"
	"strings"

	"github.com/rezonia/invoice-qc/internal/lang"
)

// Field names a single extractable scalar attribute of an invoice.
type Field string

const (
	FieldInvoiceNumber     Field = "invoice_number"
	FieldInvoiceDate       Field = "invoice_date"
	FieldCustomerNumber    Field = "customer_number"
	FieldEndCustomerNumber Field = "end_customer_number"
	FieldPaymentTerms      Field = "payment_terms"
	FieldDeliveryTerms     Field = "delivery_terms"
	FieldDeliveryDate      Field = "delivery_date"
	FieldCurrency          Field = "currency"
)

// Catalog maps each field to language-keyed ordered pattern lists.
// It is static configuration data: patterns are tried in registration
// order for the detected language, then in order for the English
// fallback list, and the first match wins. When a pattern has several
// capture groups the last non-empty group carries the value, so label
// groups can precede the value group.
type Catalog map[Field]map[string][]*regexp.Regexp

// Find resolves one field against the text. A field with no matching
// pattern, or no registered patterns at all, resolves to the empty
// string; extraction misses are never errors.
func (c Catalog) Find(field Field, language, text string) string {
	byLang := c[field]
	if byLang == nil {
		return ""
	}

	candidates := byLang[language]
	if language != lang.Default {
		candidates = append(candidates[:len(candidates):len(candidates)], byLang[lang.Default]...)
	}

	for _, re := range candidates {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for i := len(m) - 1; i >= 1; i-- {
			if m[i] != "" {
				return strings.TrimSpace(m[i])
			}
		}
	}
	return ""
}

func patterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		compiled = append(compiled, regexp.MustCompile("(?i)"+e))
	}
	return compiled
}

// defaultCatalog holds the shipped field patterns. German lists are
// tuned to the DIN 5008 style sample layout; English lists double as
// the fallback for every other detected language.
var defaultCatalog = Catalog{
	FieldInvoiceNumber: {
		lang.German: patterns(
			`Rechnungsnummer[:\s]*([A-Za-z0-9\-/]+)`,
			`Rechnung\s*Nr\.?\s*([A-Za-z0-9\-/]+)`,
			`AUFNR([0-9A-Za-z\-/]+)`,
		),
		lang.English: patterns(
			`Invoice\s*(Number|No\.?|#)[:\s]*([A-Za-z0-9\-/]+)`,
		),
	},
	FieldInvoiceDate: {
		lang.German: patterns(
			`vom\s+([\d./\-]+)`,
			`Rechnungsdatum[:\s]*([\d./\-]+)`,
		),
		lang.English: patterns(
			`Invoice\s*Date[:\s]*([\d./\-]+)`,
			`Date[:\s]*([\d./\-]+)`,
		),
	},
	FieldCustomerNumber: {
		lang.German: patterns(
			`Unsere\s+Kundennummer\s*([\dA-Za-z\-/]+)`,
		),
		lang.English: patterns(
			`Customer\s*(No\.?|Number)[:\s]*([\dA-Za-z\-/]+)`,
		),
	},
	FieldEndCustomerNumber: {
		lang.German: patterns(
			`Endkundennummer\s*([\dA-Za-z\-/]+)`,
		),
		lang.English: patterns(
			`End\s*Customer\s*(No\.?|Number)[:\s]*([\dA-Za-z\-/]+)`,
		),
	},
	FieldPaymentTerms: {
		lang.German: patterns(
			`Zahlungsbedingungen\s*(.+)`,
		),
		lang.English: patterns(
			`Payment\s*Terms[:\s]*(.+)`,
		),
	},
	FieldDeliveryTerms: {
		lang.German: patterns(
			`Lieferbedingungen\s*(.+)`,
		),
		lang.English: patterns(
			`Delivery\s*Terms[:\s]*(.+)`,
		),
	},
	FieldDeliveryDate: {
		lang.German: patterns(
			`Gewünschtes\s+Lieferdatum\s*(.+)`,
		),
		lang.English: patterns(
			`Delivery\s*Date[:\s]*(.+)`,
		),
	},
	FieldCurrency: {
		lang.German: patterns(
			`Preis\s+in\s+([A-Z]{3})`,
		),
		lang.English: patterns(
			`Currency[:\s]*([A-Z]{3})`,
		),
	},
}
