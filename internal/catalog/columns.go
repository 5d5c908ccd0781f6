package catalog

import "cotizador/internal"

// Accepted header labels per canonical field, in priority order. Labels are
// compared against normalized (trimmed, lower-cased) header cells.
var fieldSynonyms = map[internal.Field][]string{
	internal.FieldCode:      {"codigo", "código", "cod", "sku", "cod."},
	internal.FieldProduct:   {"producto", "descripcion", "descripción", "medida", "llanta", "medida/tamaño", "medida tamaño"},
	internal.FieldBrand:     {"marca"},
	internal.FieldModel:     {"modelo"},
	internal.FieldPrice:     {"precio", "contado", "contado dist", "lima premium", "precio unit", "precio_unit", "p.unit", "p_unit", "unitario"},
	internal.FieldListPrice: {"lista_precio", "lista precio", "tarifa", "lista", "crédito", "credito", "credito dist", "crédito dist"},
}

// ResolveColumns picks, for each canonical field, the first synonym present
// among the sheet's normalized labels. Fields with no match are simply
// absent from the result; the sheet still contributes rows.
func ResolveColumns(labels []string) internal.ColumnMap {
	present := map[string]struct{}{}
	for _, label := range labels {
		if label == "" {
			continue
		}
		present[label] = struct{}{}
	}

	out := internal.ColumnMap{}
	for field, synonyms := range fieldSynonyms {
		for _, synonym := range synonyms {
			if _, ok := present[synonym]; ok {
				out[field] = synonym
				break
			}
		}
	}
	return out
}
