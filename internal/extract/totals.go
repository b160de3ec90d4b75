package extract

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-qc/internal/money"
)

// totals carries the four monetary quantities pulled from a document.
// Each is extracted independently; a miss on one never affects the
// others, and none is ever derived from another.
type totals struct {
	net    *decimal.Decimal
	rate   *decimal.Decimal
	amount *decimal.Decimal
	gross  *decimal.Decimal
}

func extractTotals(p *Profile, text string) totals {
	var t totals

	for _, re := range p.NetTotal {
		if m := re.FindStringSubmatch(text); m != nil {
			t.net = parseOptional(m[1])
			break
		}
	}

	// Rate and amount come from a single match span: the rate is the
	// percentage-labeled first capture, the amount the second.
	if m := p.Tax.FindStringSubmatch(text); m != nil {
		t.rate = parseOptional(m[1])
		t.amount = parseOptional(m[2])
	}

	if m := p.GrossTotal.FindStringSubmatch(text); m != nil {
		t.gross = parseOptional(m[1])
	}

	return t
}

// parseOptional runs a captured numeric string through the locale
// aware parser, mapping failure to absence.
func parseOptional(raw string) *decimal.Decimal {
	d, ok := money.ParseNumber(raw)
	if !ok {
		return nil
	}
	return money.Ptr(d)
}
