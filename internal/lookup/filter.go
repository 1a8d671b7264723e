package lookup

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter keeps the records whose nameField contains query, comparing both
// trimmed and case-folded. Provider order is preserved and the result is
// never nil.
//
// Providers sometimes ignore their own search parameter and return an
// unfiltered page, so this runs even when the query was sent upstream.
func Filter(records []Record, query, nameField string) []Record {
	out := make([]Record, 0, len(records))
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	for _, r := range records {
		name, _ := r.Get(nameField)
		if strings.Contains(fold.String(strings.TrimSpace(name)), needle) {
			out = append(out, r)
		}
	}
	return out
}
