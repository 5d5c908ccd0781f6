package quotes

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"cotizador/internal"
	"cotizador/internal/config"
	"cotizador/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.Open(config.Config{DBPath: filepath.Join(t.TempDir(), "app.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db)
}

func TestSaveDerivesTotal(t *testing.T) {
	svc := newTestService(t)

	row, err := svc.Save(internal.QuoteInput{
		Cotizador:      "maria",
		Cliente:        "transportes sur",
		Producto:       "GOOD | TBR | S/ 350.50",
		Cantidad:       4,
		PrecioUnitario: 100.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if row.Total != 400.0 {
		t.Fatalf("total=%v want 400", row.Total)
	}
	if got := fmt.Sprintf("%.2f", row.Total); got != "400.00" {
		t.Fatalf("formatted total=%q", got)
	}
	if row.ID == 0 {
		t.Fatal("no id assigned")
	}

	stored, err := svc.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].Total != 400.0 {
		t.Fatalf("stored=%+v", stored)
	}
}

func TestSaveValidation(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		in   internal.QuoteInput
	}{
		{name: "zero cantidad", in: internal.QuoteInput{Producto: "p", Cantidad: 0, PrecioUnitario: 10}},
		{name: "negative precio", in: internal.QuoteInput{Producto: "p", Cantidad: 1, PrecioUnitario: -1}},
		{name: "empty producto", in: internal.QuoteInput{Producto: "  ", Cantidad: 1, PrecioUnitario: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Save(tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err=%v want ErrInvalidInput", err)
			}
		})
	}

	stored, err := svc.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 0 {
		t.Fatalf("invalid input must persist nothing, stored=%d", len(stored))
	}
}
