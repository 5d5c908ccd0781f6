package catalog

import (
	"strings"

	"cotizador/internal"
)

// Supplier sheets bury the header somewhere in the top rows, under logos and
// title banners. Rows past the bound are never scanned so large data blocks
// are not mistaken for headers.
const headerScanLimit = 80

var headerMarkers = []string{"CODIGO", "CÓDIGO"}

// FindHeaderRow returns the zero-based index of the first row whose cells
// contain a code-column marker, or -1 when none exists within the bound.
func FindHeaderRow(grid internal.RawGrid) int {
	top := len(grid)
	if top > headerScanLimit {
		top = headerScanLimit
	}
	for i := 0; i < top; i++ {
		for _, cell := range grid[i] {
			upper := strings.ToUpper(cell)
			for _, marker := range headerMarkers {
				if strings.Contains(upper, marker) {
					return i
				}
			}
		}
	}
	return -1
}
