package storage

import (
	"path/filepath"
	"testing"

	"cotizador/internal"
	"cotizador/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(config.Config{DBPath: filepath.Join(t.TempDir(), "app.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndListQuotes(t *testing.T) {
	db := openTestDB(t)

	id, err := db.InsertQuote(internal.QuoteRow{
		Cotizador:      "maria",
		Cliente:        "transportes sur",
		Producto:       "GOOD | TBR | S/ 350.50",
		Cantidad:       4,
		PrecioUnitario: 100,
		Total:          400,
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("no id assigned")
	}

	rows, err := db.ListQuotes(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("len=%d", len(rows))
	}
	q := rows[0]
	if q.ID != id || q.Total != 400 || q.Cantidad != 4 {
		t.Fatalf("row=%+v", q)
	}
	if q.CreatedAt == "" {
		t.Fatal("created_at not assigned by the database")
	}
}

func TestListQuotesNewestFirst(t *testing.T) {
	db := openTestDB(t)
	for i := 1; i <= 3; i++ {
		if _, err := db.InsertQuote(internal.QuoteRow{Producto: "p", Cantidad: i, PrecioUnitario: 1, Total: float64(i)}); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := db.ListQuotes(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0].Total != 3 || rows[1].Total != 2 {
		t.Fatalf("order: %v %v", rows[0].Total, rows[1].Total)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if value, err := db.GetMetadata("catalog.last_load"); err != nil || value != nil {
		t.Fatalf("value=%v err=%v", value, err)
	}

	if err := db.SetMetadata("catalog.last_load", "2026-08-23T00:00:00Z"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata("catalog.last_load", "2026-08-24T00:00:00Z"); err != nil {
		t.Fatal(err)
	}

	value, err := db.GetMetadata("catalog.last_load")
	if err != nil {
		t.Fatal(err)
	}
	if value == nil || *value != "2026-08-24T00:00:00Z" {
		t.Fatalf("value=%v", value)
	}
}
