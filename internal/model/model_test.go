package model_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-qc/internal/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestInvoice_ID(t *testing.T) {
	tests := []struct {
		name     string
		invoice  model.Invoice
		expected string
	}{
		{
			name:     "invoice number wins",
			invoice:  model.Invoice{InvoiceNumber: "INV-1", SourceFile: "a.pdf"},
			expected: "INV-1",
		},
		{
			name:     "source file fallback",
			invoice:  model.Invoice{SourceFile: "a.pdf"},
			expected: "a.pdf",
		},
		{
			name:     "unknown fallback",
			invoice:  model.Invoice{},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.invoice.ID())
		})
	}
}

func TestInvoice_Key(t *testing.T) {
	inv := model.Invoice{
		InvoiceNumber: "INV-1",
		InvoiceDate:   "2024-01-15",
		SellerName:    "ACME GmbH",
	}

	key, ok := inv.Key()
	require.True(t, ok)
	assert.Equal(t, model.DuplicateKey{
		Number: "INV-1",
		Date:   "2024-01-15",
		Seller: "ACME GmbH",
	}, key)
}

func TestInvoice_Key_Incomplete(t *testing.T) {
	tests := []struct {
		name    string
		invoice model.Invoice
	}{
		{"missing number", model.Invoice{InvoiceDate: "2024-01-15", SellerName: "ACME"}},
		{"missing date", model.Invoice{InvoiceNumber: "INV-1", SellerName: "ACME"}},
		{"missing seller", model.Invoice{InvoiceNumber: "INV-1", InvoiceDate: "2024-01-15"}},
		{"all missing", model.Invoice{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.invoice.Key()
			assert.False(t, ok)
		})
	}
}

func TestInvoice_JSONRoundTrip(t *testing.T) {
	inv := model.Invoice{
		InvoiceNumber: "INV-77",
		InvoiceDate:   "2024-01-15",
		Currency:      "EUR",
		NetTotal:      dec("100"),
		TaxAmount:     dec("19"),
		GrossTotal:    dec("119"),
		LineItems: []model.LineItem{
			{Description: "Widget", Quantity: dec("2"), UnitPrice: dec("50")},
		},
		SourceFile: "inv77.pdf",
	}

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	var got model.Invoice
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, inv.InvoiceNumber, got.InvoiceNumber)
	assert.True(t, got.NetTotal.Equal(*inv.NetTotal))
	require.Len(t, got.LineItems, 1)
	assert.True(t, got.LineItems[0].Quantity.Equal(decimal.NewFromInt(2)))

	// Absent numerics stay absent through serialization.
	assert.Nil(t, got.TaxRate)
}

func TestParseError(t *testing.T) {
	cause := assert.AnError
	err := model.NewParseError("inv.pdf", "text extraction failed", cause)

	require.Contains(t, err.Error(), "inv.pdf")
	require.Contains(t, err.Error(), "text extraction failed")
	require.ErrorIs(t, err, cause)
}

func TestBatchError(t *testing.T) {
	err := model.NewBatchError(3, "not an invoice record", nil)

	require.Contains(t, err.Error(), "batch record 3")
	require.Contains(t, err.Error(), "not an invoice record")
}

func TestDecodeInvoices(t *testing.T) {
	data := []byte(`[
		{"invoice_number":"INV-1","net_total":"100"},
		{"source_file":"b.pdf"}
	]`)

	invoices, err := model.DecodeInvoices("batch.json", data)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-1", invoices[0].InvoiceNumber)
	assert.True(t, invoices[0].NetTotal.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "b.pdf", invoices[1].SourceFile)
}

func TestDecodeInvoices_NotAnArray(t *testing.T) {
	_, err := model.DecodeInvoices("batch.json", []byte(`{"not":"a list"`))
	require.Error(t, err)

	var parseErr *model.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "batch.json", parseErr.Source)
}

func TestDecodeInvoices_BadRecord(t *testing.T) {
	data := []byte(`[
		{"invoice_number":"INV-1"},
		{"net_total":"not a number"}
	]`)

	_, err := model.DecodeInvoices("batch.json", data)
	require.Error(t, err)

	var batchErr *model.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.Index)
}
