package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/invoice-qc/internal/lang"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "german invoice text",
			text:     "Rechnungsnummer 2024-001 vom 15.01.2024\nGesamtwert EUR 1.234,56 inkl. MwSt.\nZahlungsbedingungen: 30 Tage netto",
			expected: lang.German,
		},
		{
			name:     "english invoice text",
			text:     "Invoice Number: INV-77\nInvoice Date: 2024-01-15\nPayment Terms: net 30 days\nTotal amount due for this invoice",
			expected: lang.English,
		},
		{
			name:     "empty text",
			text:     "",
			expected: lang.Default,
		},
		{
			name:     "too short",
			text:     "Rechnung",
			expected: lang.Default,
		},
		{
			name:     "ambiguous digits only",
			text:     "12345 67890 11121 31415 92653 58979",
			expected: lang.Default,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lang.Detect(tt.text))
		})
	}
}
