// Package lang provides best-effort language detection for invoice
// text. Only German and English are distinguished; everything else
// falls back to English, which is also the pattern-lookup fallback, so
// a wrong guess can never block extraction.
package lang

import "strings"

// Language tags returned by Detect.
const (
	German  = "de"
	English = "en"
)

// Default is returned whenever detection fails or is ambiguous.
const Default = English

// minTextLen guards against guessing on fragments.
const minTextLen = 20

var markers = map[string][]string{
	German: {
		"und", "der", "die", "das", "für", "mit", "nicht", "eine", "ist",
		"rechnung", "rechnungsnummer", "rechnungsdatum", "betrag",
		"gesamtwert", "mwst", "netto", "brutto", "zahlungsbedingungen",
		"lieferbedingungen", "kundennummer", "kundenanschrift",
		"unsere", "ihre", "vom", "seite", "stück",
	},
	English: {
		"the", "and", "for", "with", "from", "this", "are",
		"invoice", "date", "number", "total", "amount", "payment",
		"terms", "delivery", "customer", "currency", "due", "page",
		"quantity", "price", "net", "gross", "tax",
	},
}

// Detect returns "de" or "en" for a text blob. Empty, short, or
// ambiguous input yields the English default.
func Detect(text string) string {
	if len(strings.TrimSpace(text)) < minTextLen {
		return Default
	}

	words := tokenize(text)
	if len(words) == 0 {
		return Default
	}

	scores := make(map[string]int, len(markers))
	for tag, list := range markers {
		for _, m := range list {
			scores[tag] += words[m]
		}
	}

	if scores[German] > scores[English] {
		return German
	}
	return Default
}

func tokenize(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r == 'ä' || r == 'ö' || r == 'ü' || r == 'ß':
			return false
		default:
			return true
		}
	}) {
		counts[w]++
	}
	return counts
}
