package extract

import "strings"

// parties holds the seller/buyer name and address heuristically pulled
// from anchored text blocks.
type parties struct {
	sellerName    string
	sellerAddress string
	buyerName     string
	buyerAddress  string
}

// extractParties locates the buyer block between the customer-address
// label and a customer-number label or page break, and the seller
// block between the seller opening phrase and a fax-number label or
// page break. The block's first non-blank line is the name; the
// remaining lines joined with ", " form the address. A missed anchor
// pair leaves both fields of that party absent. This is a narrow
// heuristic scoped to the profile's template family, not an address
// parser.
func extractParties(p *Profile, text string) parties {
	var out parties

	if m := p.BuyerBlock.FindStringSubmatch(text); m != nil {
		out.buyerName, out.buyerAddress = splitBlock(m[1])
	}
	if m := p.SellerBlock.FindStringSubmatch(text); m != nil {
		out.sellerName, out.sellerAddress = splitBlock(m[1])
	}

	return out
}

func splitBlock(block string) (name, address string) {
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return "", ""
	}
	name = lines[0]
	if len(lines) > 1 {
		address = strings.Join(lines[1:], ", ")
	}
	return name, address
}
