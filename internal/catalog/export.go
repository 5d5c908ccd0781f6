package catalog

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"cotizador/internal"
)

// ExportToXLSX writes the assembled catalog to a single workbook, one row
// per catalog row, for auditing what the suppliers' files merged into.
func ExportToXLSX(cat internal.Catalog, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"uid", "proveedor", "uso",
		"codigo", "producto", "marca", "modelo",
		"precio", "lista_precio", "texto_busqueda", "label",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range cat {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.UID)
		set(2, row.Source)
		set(3, row.Usage)
		set(4, row.Code)
		set(5, row.Product)
		set(6, row.Brand)
		set(7, row.Model)
		set(8, derefPrice(row.Price))
		set(9, row.ListPrice)
		set(10, row.SearchText)
		set(11, row.Label)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefPrice(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
