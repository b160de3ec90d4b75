package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-qc/internal/model"
	"github.com/rezonia/invoice-qc/internal/validate"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// completeInvoice returns an invoice passing every rule.
func completeInvoice() *model.Invoice {
	return &model.Invoice{
		InvoiceNumber: "INV-1",
		InvoiceDate:   "2024-01-15",
		SellerName:    "ACME GmbH",
		BuyerName:     "Klinik Musterstadt",
		Currency:      "EUR",
		NetTotal:      dec("100"),
		TaxAmount:     dec("19"),
		GrossTotal:    dec("119"),
		SourceFile:    "inv1.pdf",
	}
}

func TestValidate_CompleteInvoice(t *testing.T) {
	result := validate.NewEngine().Validate(completeInvoice())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "INV-1", result.InvoiceID)
}

func TestValidate_Completeness_AllMissing(t *testing.T) {
	result := validate.NewEngine().Validate(&model.Invoice{})

	assert.False(t, result.IsValid)
	require.Equal(t, []string{
		"missing_field:invoice_number",
		"missing_field:invoice_date",
		"missing_field:seller_name",
		"missing_field:buyer_name",
		"missing_field:net_total",
		"missing_field:tax_amount",
		"missing_field:gross_total",
	}, result.Errors)
	assert.Equal(t, "unknown", result.InvoiceID)
}

func TestValidate_InvoiceID_SourceFileFallback(t *testing.T) {
	inv := completeInvoice()
	inv.InvoiceNumber = ""

	result := validate.NewEngine().Validate(inv)
	assert.Equal(t, "inv1.pdf", result.InvoiceID)
}

func TestValidate_Currency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		wantErr  bool
	}{
		{"EUR allowed", "EUR", false},
		{"USD allowed", "USD", false},
		{"INR allowed", "INR", false},
		{"case insensitive", "usd", false},
		{"unsupported", "GBP", true},
		{"garbage", "??", true},
		{"absent is not checked", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := completeInvoice()
			inv.Currency = tt.currency

			result := validate.NewEngine().Validate(inv)
			if tt.wantErr {
				assert.Equal(t, []string{validate.CodeUnsupportedCurrency}, result.Errors)
			} else {
				assert.Empty(t, result.Errors)
			}
		})
	}
}

func TestValidate_TotalsIdentity(t *testing.T) {
	inv := completeInvoice()
	result := validate.NewEngine().Validate(inv)
	assert.NotContains(t, result.Errors, validate.CodeTotalsMismatch)

	inv.GrossTotal = dec("120")
	result = validate.NewEngine().Validate(inv)
	assert.Equal(t, []string{validate.CodeTotalsMismatch}, result.Errors)

	// Within the 0.5 tolerance.
	inv.GrossTotal = dec("119.4")
	result = validate.NewEngine().Validate(inv)
	assert.Empty(t, result.Errors)
}

func TestValidate_TotalsIdentity_SkippedWhenIncomplete(t *testing.T) {
	inv := completeInvoice()
	inv.TaxAmount = nil
	inv.GrossTotal = dec("999")

	result := validate.NewEngine().Validate(inv)
	assert.NotContains(t, result.Errors, validate.CodeTotalsMismatch)
	assert.Contains(t, result.Errors, "missing_field:tax_amount")
}

func TestValidate_LineItemConsistency(t *testing.T) {
	inv := completeInvoice()
	inv.LineItems = []model.LineItem{
		{LineTotal: dec("60")},
		{LineTotal: dec("30")},
	}

	result := validate.NewEngine().Validate(inv)
	assert.Contains(t, result.Errors, validate.CodeNetMismatchLineItems)

	// Absent line totals count as zero; a matching sum passes.
	inv.LineItems = []model.LineItem{
		{LineTotal: dec("60")},
		{LineTotal: dec("40")},
		{LineTotal: nil},
	}
	result = validate.NewEngine().Validate(inv)
	assert.NotContains(t, result.Errors, validate.CodeNetMismatchLineItems)
}

func TestValidate_LineItemConsistency_ZeroSumSkipped(t *testing.T) {
	inv := completeInvoice()
	inv.LineItems = []model.LineItem{{LineTotal: nil}, {LineTotal: nil}}

	result := validate.NewEngine().Validate(inv)
	assert.Empty(t, result.Errors)
}

func TestValidate_Anomaly_NegativeNet(t *testing.T) {
	inv := completeInvoice()
	inv.NetTotal = dec("-5")
	inv.TaxAmount = dec("19")
	inv.GrossTotal = dec("14")

	result := validate.NewEngine().Validate(inv)
	assert.Equal(t, []string{validate.AnomalyCode("net_total")}, result.Errors)
}

func TestValidate_Anomaly_AllNegative(t *testing.T) {
	inv := completeInvoice()
	inv.NetTotal = dec("-100")
	inv.TaxAmount = dec("-19")
	inv.GrossTotal = dec("-119")

	result := validate.NewEngine().Validate(inv)
	assert.Equal(t, []string{
		validate.AnomalyCode("net_total"),
		validate.AnomalyCode("tax_amount"),
		validate.AnomalyCode("gross_total"),
	}, result.Errors)
}

func TestValidate_Duplicate_SecondFlagged(t *testing.T) {
	engine := validate.NewEngine()

	a := completeInvoice()
	b := completeInvoice()

	resA := engine.Validate(a)
	resB := engine.Validate(b)

	assert.Empty(t, resA.Errors)
	assert.Equal(t, []string{validate.CodeDuplicateInvoice}, resB.Errors)
}

func TestValidate_Duplicate_IncompleteKeyNeverFlagged(t *testing.T) {
	engine := validate.NewEngine()

	a := completeInvoice()
	a.InvoiceDate = ""
	b := completeInvoice()
	b.InvoiceDate = ""

	resA := engine.Validate(a)
	resB := engine.Validate(b)

	assert.NotContains(t, resA.Errors, validate.CodeDuplicateInvoice)
	assert.NotContains(t, resB.Errors, validate.CodeDuplicateInvoice)
}

func TestValidate_Duplicate_KeyNeedsAllThreeComponents(t *testing.T) {
	engine := validate.NewEngine()

	// An invoice lacking a key component must not register a key that
	// a later complete invoice could collide with.
	partial := completeInvoice()
	partial.SellerName = ""
	full := completeInvoice()

	engine.Validate(partial)
	res := engine.Validate(full)
	assert.NotContains(t, res.Errors, validate.CodeDuplicateInvoice)
}

func TestValidate_MultipleFailuresAccumulate(t *testing.T) {
	inv := &model.Invoice{
		Currency:   "GBP",
		NetTotal:   dec("-100"),
		TaxAmount:  dec("19"),
		GrossTotal: dec("50"),
	}

	result := validate.NewEngine().Validate(inv)
	assert.False(t, result.IsValid)
	require.Equal(t, []string{
		"missing_field:invoice_number",
		"missing_field:invoice_date",
		"missing_field:seller_name",
		"missing_field:buyer_name",
		validate.CodeUnsupportedCurrency,
		validate.CodeTotalsMismatch,
		validate.AnomalyCode("net_total"),
	}, result.Errors)
}
