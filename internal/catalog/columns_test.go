package catalog

import (
	"testing"

	"cotizador/internal"
)

func TestResolveColumnsPriority(t *testing.T) {
	// "precio" outranks "contado" even when both are present.
	cols := ResolveColumns([]string{"contado", "precio", "marca"})
	if got := cols[internal.FieldPrice]; got != "precio" {
		t.Fatalf("price label=%q want precio", got)
	}
	if got := cols[internal.FieldBrand]; got != "marca" {
		t.Fatalf("brand label=%q want marca", got)
	}
}

func TestResolveColumnsFallbackSynonyms(t *testing.T) {
	cols := ResolveColumns([]string{"sku", "medida", "lima premium", "tarifa"})
	if got := cols[internal.FieldCode]; got != "sku" {
		t.Fatalf("code label=%q", got)
	}
	if got := cols[internal.FieldProduct]; got != "medida" {
		t.Fatalf("product label=%q", got)
	}
	if got := cols[internal.FieldPrice]; got != "lima premium" {
		t.Fatalf("price label=%q", got)
	}
	if got := cols[internal.FieldListPrice]; got != "tarifa" {
		t.Fatalf("list price label=%q", got)
	}
}

func TestResolveColumnsUnresolved(t *testing.T) {
	cols := ResolveColumns([]string{"codigo", "cantidad", "stock"})
	if _, ok := cols[internal.FieldPrice]; ok {
		t.Fatal("price should be unresolved")
	}
	if _, ok := cols[internal.FieldModel]; ok {
		t.Fatal("model should be unresolved")
	}
	if got := cols[internal.FieldCode]; got != "codigo" {
		t.Fatalf("code label=%q", got)
	}
}
