package model

import "encoding/json"

// DecodeInvoices decodes a JSON array of invoices. A document that is
// not a JSON array yields a ParseError for the whole source; a record
// inside the array that cannot be decoded yields a BatchError carrying
// its index. Records are decoded individually so the failing position
// is always known.
func DecodeInvoices(source string, data []byte) ([]*Invoice, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewParseError(source, "invalid invoice batch", err)
	}

	invoices := make([]*Invoice, 0, len(raw))
	for i, r := range raw {
		inv := &Invoice{}
		if err := json.Unmarshal(r, inv); err != nil {
			return nil, NewBatchError(i, "invalid invoice record", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
