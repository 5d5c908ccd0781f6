package catalog

import (
	"github.com/xuri/excelize/v2"

	"cotizador/internal"
)

// SheetGrid pairs a sheet name with its raw, header-less cell grid.
type SheetGrid struct {
	Name string
	Grid internal.RawGrid
}

// ReadWorkbook loads every sheet of one supplier workbook in sheet order.
// Sheets that cannot be enumerated are skipped; a file that cannot be opened
// fails as a whole.
func ReadWorkbook(path string) ([]SheetGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make([]SheetGrid, 0, len(f.GetSheetList()))
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		out = append(out, SheetGrid{Name: sheet, Grid: rows})
	}
	return out, nil
}
