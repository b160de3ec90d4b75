// Package validate evaluates quality rules against extracted invoices
// and folds the per-invoice results into a batch report.
//
// Validation failures are data, not control flow: every failing check
// appends a colon-delimited error code, evaluation never short
// circuits, and validating any syntactically valid Invoice never
// returns an error.
package validate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-qc/internal/model"
	"github.com/rezonia/invoice-qc/internal/money"
)

// Error codes in the <category>:<detail> form.
const (
	CodeUnsupportedCurrency  = "format_error:unsupported_currency"
	CodeNetMismatchLineItems = "business_rule_failed:net_total_mismatch_line_items"
	CodeTotalsMismatch       = "business_rule_failed:totals_mismatch"
	CodeDuplicateInvoice     = "duplicate_invoice"
)

// MissingFieldCode builds the completeness error code for a field.
func MissingFieldCode(field string) string {
	return "missing_field:" + field
}

// AnomalyCode builds the negative-amount anomaly code for a field.
func AnomalyCode(field string) string {
	return "anomaly:" + field + "_negative"
}

// defaultTolerance is the absolute slack allowed by the arithmetic
// consistency rules, absorbing rounding noise in extracted amounts.
var defaultTolerance = decimal.RequireFromString("0.5")

// Engine evaluates the rule set. It is stateless per invoice except
// for the duplicate-key set, which is scoped to one batch: create one
// Engine per validation run and feed it invoices in input order, since
// the first occurrence of a key is never flagged and later ones are.
type Engine struct {
	tolerance decimal.Decimal
	seen      map[model.DuplicateKey]struct{}
}

// NewEngine creates a rule engine with an empty duplicate-key set.
func NewEngine() *Engine {
	return &Engine{
		tolerance: defaultTolerance,
		seen:      make(map[model.DuplicateKey]struct{}),
	}
}

// Validate evaluates all rules against one invoice in fixed order,
// accumulating an error code per failing check.
func (e *Engine) Validate(inv *model.Invoice) model.ValidationResult {
	errs := []string{}

	errs = append(errs, e.completeness(inv)...)
	errs = append(errs, e.format(inv)...)
	errs = append(errs, e.lineItemConsistency(inv)...)
	errs = append(errs, e.totalsIdentity(inv)...)
	errs = append(errs, e.anomalies(inv)...)
	errs = append(errs, e.duplicate(inv)...)

	return model.ValidationResult{
		InvoiceID: inv.ID(),
		IsValid:   len(errs) == 0,
		Errors:    errs,
	}
}

func (e *Engine) completeness(inv *model.Invoice) []string {
	var errs []string

	required := []struct {
		name    string
		present bool
	}{
		{"invoice_number", inv.InvoiceNumber != ""},
		{"invoice_date", inv.InvoiceDate != ""},
		{"seller_name", inv.SellerName != ""},
		{"buyer_name", inv.BuyerName != ""},
		{"net_total", inv.NetTotal != nil},
		{"tax_amount", inv.TaxAmount != nil},
		{"gross_total", inv.GrossTotal != nil},
	}

	for _, r := range required {
		if !r.present {
			errs = append(errs, MissingFieldCode(r.name))
		}
	}
	return errs
}

func (e *Engine) format(inv *model.Invoice) []string {
	var errs []string

	if inv.Currency != "" && !allowedCurrency(inv.Currency) {
		errs = append(errs, CodeUnsupportedCurrency)
	}

	// The <field>_not_numeric checks are structurally guaranteed by
	// the decimal typing: a non-numeric amount cannot exist in an
	// Invoice value. Malformed batch JSON fails at decode time
	// instead.
	return errs
}

func allowedCurrency(code string) bool {
	for _, allowed := range model.AllowedCurrencies {
		if strings.EqualFold(code, allowed) {
			return true
		}
	}
	return false
}

func (e *Engine) lineItemConsistency(inv *model.Invoice) []string {
	if len(inv.LineItems) == 0 || inv.NetTotal == nil {
		return nil
	}

	sum := money.Zero
	for _, li := range inv.LineItems {
		if li.LineTotal != nil {
			sum = sum.Add(*li.LineTotal)
		}
	}

	if !sum.IsZero() && !money.WithinTolerance(sum, *inv.NetTotal, e.tolerance) {
		return []string{CodeNetMismatchLineItems}
	}
	return nil
}

func (e *Engine) totalsIdentity(inv *model.Invoice) []string {
	if inv.NetTotal == nil || inv.TaxAmount == nil || inv.GrossTotal == nil {
		return nil
	}

	expected := inv.NetTotal.Add(*inv.TaxAmount)
	if !money.WithinTolerance(expected, *inv.GrossTotal, e.tolerance) {
		return []string{CodeTotalsMismatch}
	}
	return nil
}

func (e *Engine) anomalies(inv *model.Invoice) []string {
	var errs []string

	amounts := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"net_total", inv.NetTotal},
		{"tax_amount", inv.TaxAmount},
		{"gross_total", inv.GrossTotal},
	}

	for _, a := range amounts {
		if a.value != nil && money.IsNegative(*a.value) {
			errs = append(errs, AnomalyCode(a.name))
		}
	}
	return errs
}

func (e *Engine) duplicate(inv *model.Invoice) []string {
	key, ok := inv.Key()
	if !ok {
		return nil
	}

	if _, dup := e.seen[key]; dup {
		return []string{CodeDuplicateInvoice}
	}
	e.seen[key] = struct{}{}
	return nil
}
