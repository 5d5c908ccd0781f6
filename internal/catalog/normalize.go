package catalog

import (
	"strings"

	"cotizador/internal"
	"cotizador/internal/util"
)

// NormalizedRow is one data row reshaped onto the canonical fields, tagged
// with the usage category derived from its sheet name.
type NormalizedRow struct {
	Usage     string
	Code      string
	Product   string
	Brand     string
	Model     string
	Price     *float64
	ListPrice string
}

// NormalizeSheet reshapes one raw sheet into canonical rows. The located
// header row supplies the column labels; every later row is data. Returns
// ok=false when no header row was found, in which case the sheet contributes
// nothing.
func NormalizeSheet(sheetName string, grid internal.RawGrid) ([]NormalizedRow, bool) {
	hdr := FindHeaderRow(grid)
	if hdr < 0 {
		return nil, false
	}

	// Normalize header labels. Duplicate labels keep the first occurrence;
	// some suppliers repeat whole header blocks inside one sheet.
	labels := make([]string, 0, len(grid[hdr]))
	seen := map[string]struct{}{}
	for _, cell := range grid[hdr] {
		label := util.NormalizeLabel(cell)
		if label == "" {
			labels = append(labels, "")
			continue
		}
		if _, dup := seen[label]; dup {
			labels = append(labels, "")
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	columns := ResolveColumns(labels)
	indexByField := map[internal.Field]int{}
	for field, label := range columns {
		for i, l := range labels {
			if l == label {
				indexByField[field] = i
				break
			}
		}
	}

	usage := strings.ToUpper(strings.TrimSpace(sheetName))

	out := make([]NormalizedRow, 0, len(grid)-hdr-1)
	for _, row := range grid[hdr+1:] {
		if rowEmpty(row) {
			continue
		}
		cell := func(field internal.Field) string {
			i, ok := indexByField[field]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		out = append(out, NormalizedRow{
			Usage:     usage,
			Code:      util.NormalizeCode(cell(internal.FieldCode)),
			Product:   cell(internal.FieldProduct),
			Brand:     cell(internal.FieldBrand),
			Model:     cell(internal.FieldModel),
			Price:     util.ParsePrice(cell(internal.FieldPrice)),
			ListPrice: cell(internal.FieldListPrice),
		})
	}
	return out, true
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
