package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"cotizador/internal"
	"cotizador/internal/catalog"
	"cotizador/internal/config"
	"cotizador/internal/quotes"
	"cotizador/internal/server"
	"cotizador/internal/storage"
	"cotizador/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "catalog:load":
		loader := catalog.NewLoader(cfg.DataDir, db)
		cat, report, err := loader.Load()
		if err != nil && !errors.Is(err, catalog.ErrNoData) {
			must(err)
		}
		printReport(report)
		if errors.Is(err, catalog.ErrNoData) {
			fmt.Println("no usable rows: check that the files exist and have a CODIGO header")
			return
		}
		fmt.Printf("catalog loaded: %d rows\n", len(cat))
	case "catalog:search":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		query := fs.String("q", "", "search query (e.g. R16, AEOLUS, 155/70)")
		_ = fs.Parse(os.Args[2:])

		loader := catalog.NewLoader(cfg.DataDir, db)
		cat, report, err := loader.Load()
		if err != nil && !errors.Is(err, catalog.ErrNoData) {
			must(err)
		}
		if errors.Is(err, catalog.ErrNoData) {
			printReport(report)
			must(fmt.Errorf("catalog is empty, nothing to search"))
		}

		rows := catalog.Search(cat, *query)
		fmt.Printf("results: %d\n", len(rows))
		for _, row := range rows {
			fmt.Printf("%-28s %-12s %-40s S/ %s\n", row.UID, row.Code, row.Product, util.FormatPrice(row.Price))
		}
	case "catalog:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}

		loader := catalog.NewLoader(cfg.DataDir, db)
		cat, report, err := loader.Load()
		if err != nil && !errors.Is(err, catalog.ErrNoData) {
			must(err)
		}
		printReport(report)
		if errors.Is(err, catalog.ErrNoData) {
			must(fmt.Errorf("catalog is empty, nothing to export"))
		}
		must(catalog.ExportToXLSX(cat, *out))
		fmt.Printf("exported %d rows to %s\n", len(cat), *out)
	case "quote:save":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		cotizador := fs.String("cotizador", "", "who is quoting")
		cliente := fs.String("cliente", "", "customer name")
		producto := fs.String("producto", "", "product label")
		cantidad := fs.Int("cantidad", 1, "quantity")
		precio := fs.Float64("precio", 0, "unit price")
		_ = fs.Parse(os.Args[2:])

		svc := quotes.NewService(db)
		row, err := svc.Save(internal.QuoteInput{
			Cotizador:      *cotizador,
			Cliente:        *cliente,
			Producto:       *producto,
			Cantidad:       *cantidad,
			PrecioUnitario: *precio,
		})
		must(err)
		fmt.Printf("cotización guardada id=%d total=S/ %.2f\n", row.ID, row.Total)
	case "quote:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max quotes")
		_ = fs.Parse(os.Args[2:])

		svc := quotes.NewService(db)
		rows, err := svc.List(*limit)
		must(err)
		for _, q := range rows {
			fmt.Printf("#%-5d %-12s %-16s %-40s x%-4d S/ %.2f  %s\n",
				q.ID, q.Cotizador, q.Cliente, q.Producto, q.Cantidad, q.Total, q.CreatedAt)
		}
	case "serve":
		loader := catalog.NewLoader(cfg.DataDir, db)
		srv := server.New(cfg, loader, quotes.NewService(db))
		fmt.Printf("listening on %s (db=%s)\n", cfg.HTTPAddr, db.Driver())
		must(srv.Run())
	default:
		usage()
		os.Exit(1)
	}
}

func printReport(report catalog.IngestReport) {
	fmt.Printf("files=%d rows=%d elapsed=%s\n", report.Files, report.Rows, report.Elapsed)
	for source, rows := range report.RowsBySource {
		fmt.Printf("  %s: %d rows\n", source, rows)
	}
	for _, w := range report.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("  error: %s\n", e)
	}
}

func usage() {
	fmt.Println("usage: cotizador <command>")
	fmt.Println("commands:")
	fmt.Println("  catalog:load")
	fmt.Println("  catalog:search --q=R16")
	fmt.Println("  catalog:export --out=./out/catalogo.xlsx")
	fmt.Println("  quote:save --cotizador=... --cliente=... --producto=... --cantidad=4 --precio=100")
	fmt.Println("  quote:list --limit=20")
	fmt.Println("  serve")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
