package extract

import (
	"regexp"
	"sync"
)

// Profile is a template-scoped extraction strategy. Party, totals and
// line-item extraction are regex heuristics tuned to one document
// layout family; bundling the anchors per template keeps the dispatch
// logic free of layout knowledge and lets additional templates be
// registered without touching the extractors. An anchor that does not
// match simply yields absent fields.
type Profile struct {
	ID string

	// Scalar field patterns, language-keyed.
	Fields Catalog

	// Monetary composite patterns. Net patterns are tried in order;
	// the tax pattern captures rate then amount in one match span.
	NetTotal   []*regexp.Regexp
	Tax        *regexp.Regexp
	GrossTotal *regexp.Regexp

	// Purchase-order pattern; all non-empty captures are joined with
	// a space.
	PurchaseOrder *regexp.Regexp

	// Party block anchors: group 1 captures the block between the
	// opening label and the closing anchor.
	BuyerBlock  *regexp.Regexp
	SellerBlock *regexp.Regexp

	// Line-item table anchors and row token patterns.
	TableStart     *regexp.Regexp
	RowStart       *regexp.Regexp
	QuantityUnit   *regexp.Regexp
	UnitConversion *regexp.Regexp
	UnitPrice      *regexp.Regexp

	// Document-level product marker reused as the description for
	// every extracted row.
	ProductMarker *regexp.Regexp
}

// DefaultProfileID identifies the shipped profile, tuned to the DIN
// 5008 style German invoice layout of the sample corpus.
const DefaultProfileID = "din5008"

var (
	profileMu sync.RWMutex
	profiles  = map[string]*Profile{}
)

// RegisterProfile adds or replaces a template profile.
func RegisterProfile(p *Profile) {
	profileMu.Lock()
	defer profileMu.Unlock()
	profiles[p.ID] = p
}

// LookupProfile returns the profile for the given template ID, falling
// back to the default profile for unknown IDs.
func LookupProfile(id string) *Profile {
	profileMu.RLock()
	defer profileMu.RUnlock()
	if p, ok := profiles[id]; ok {
		return p
	}
	return profiles[DefaultProfileID]
}

func init() {
	RegisterProfile(&Profile{
		ID:     DefaultProfileID,
		Fields: defaultCatalog,
		NetTotal: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Gesamtwert\s+EUR\s*([\d.,]+)`),
			regexp.MustCompile(`(?i)Netto(?:betrag)?[:\s]*([\d.,]+)`),
		},
		Tax:           regexp.MustCompile(`(?is)MwSt\.?\s*([\d.,]+)\s*%.*?([\d.,]+)`),
		GrossTotal:    regexp.MustCompile(`(?i)Gesamtwert\s+inkl\.?\s+MwSt\.?\s*EUR\s*([\d.,]+)`),
		PurchaseOrder: regexp.MustCompile(`(?is)Bestellung\s+([A-Z0-9]+).*?(im Auftrag von\s*[0-9A-Za-z]+)?`),
		BuyerBlock:    regexp.MustCompile(`(?is)Kundenanschrift(.*?)(?:Unsere Kundennummer|Seite\s+\d+)`),
		SellerBlock:   regexp.MustCompile(`(?is)(Beispielname.*?)(?:Ihre Faxnummer|Seite\s+\d+)`),

		TableStart:     regexp.MustCompile(`(?is)Pos\.\s+Artikelbeschreibung.*?Bestellwert\s+in\s+EUR(.*)`),
		RowStart:       regexp.MustCompile(`^\d+\s`),
		QuantityUnit:   regexp.MustCompile(`(\d+[,.]?\d*)\s*([A-Za-z]+)`),
		UnitConversion: regexp.MustCompile(`(?i)(1\s*[A-Za-z]+\s*=\s*\d+\s*Stück)`),
		UnitPrice:      regexp.MustCompile(`(?i)([\d.,]+)\s*pro`),
		ProductMarker:  regexp.MustCompile(`(?i)Sterilisationsmittel`),
	})
}
