package extract

import (
	"strconv"
	"strings"

	"github.com/rezonia/invoice-qc/internal/model"
)

// extractLineItems locates the line-item table via the profile's
// header-phrase anchor and parses every row that starts with an
// integer position token. A document without a recognizable table
// yields an empty sequence, not an error.
//
// Row descriptions are not parsed per row; when the profile's product
// marker matches anywhere in the document, the matched phrase is
// reused as the description of every row.
func extractLineItems(p *Profile, text string) []model.LineItem {
	m := p.TableStart.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	description := ""
	if dm := p.ProductMarker.FindString(text); dm != "" {
		description = dm
	}

	var items []model.LineItem
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !p.RowStart.MatchString(line) {
			continue
		}
		items = append(items, parseRow(p, line, description))
	}
	return items
}

func parseRow(p *Profile, line, description string) model.LineItem {
	item := model.LineItem{Description: description}

	if pos, err := strconv.Atoi(strings.Fields(line)[0]); err == nil {
		item.Position = &pos
	}

	// First number-then-letters token is the quantity/unit pair. With
	// a bare "<pos> <unit>" row this picks up the position itself as
	// the quantity, matching how such rows are laid out in the
	// template family.
	if qm := p.QuantityUnit.FindStringSubmatch(line); qm != nil {
		item.Quantity = parseOptional(qm[1])
		item.Unit = qm[2]
	}

	if cm := p.UnitConversion.FindStringSubmatch(line); cm != nil {
		item.UnitConversion = strings.TrimSpace(cm[1])
	}

	if pm := p.UnitPrice.FindStringSubmatch(line); pm != nil {
		item.UnitPrice = parseOptional(pm[1])
	}

	return item
}
