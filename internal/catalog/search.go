package catalog

import (
	"strings"

	"cotizador/internal"
)

// Search filters the catalog the way a spreadsheet filter does: the query is
// trimmed and uppercased, then matched as a substring of each row's search
// text. Order is preserved; an empty query returns the whole catalog.
func Search(cat internal.Catalog, query string) internal.Catalog {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return cat
	}
	out := internal.Catalog{}
	for _, row := range cat {
		if strings.Contains(row.SearchText, q) {
			out = append(out, row)
		}
	}
	return out
}
