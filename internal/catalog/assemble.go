package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"cotizador/internal"
	"cotizador/internal/util"
)

// ErrNoData marks a pass that produced zero usable rows across all files.
// It is a signaled state, not a transient failure: search and selection are
// disabled until the source directory has valid data.
var ErrNoData = errors.New("catalog: no usable rows found")

// IngestReport collects what one ingestion pass did: per-file row counts,
// sheets skipped for lack of a header row, and files that failed to read.
type IngestReport struct {
	Files        int
	Rows         int
	RowsBySource map[string]int
	Warnings     []string
	Errors       []string
	Elapsed      time.Duration
}

// LoadDir assembles the catalog from every .xlsx file in dir, in
// lexicographic file order. Sheet and file failures are recorded in the
// report and never abort the pass.
func LoadDir(dir string) (internal.Catalog, IngestReport, error) {
	start := time.Now()
	report := IngestReport{RowsBySource: map[string]int{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, report, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".xlsx") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	cat := internal.Catalog{}
	for _, name := range names {
		report.Files++
		source := strings.TrimSuffix(name, filepath.Ext(name))

		sheets, err := ReadWorkbook(filepath.Join(dir, name))
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", source, err))
			continue
		}

		fileRows := []NormalizedRow{}
		headerFound := false
		for _, sheet := range sheets {
			rows, ok := NormalizeSheet(sheet.Name, sheet.Grid)
			if !ok {
				report.Warnings = append(report.Warnings, fmt.Sprintf("%s: sheet %q has no header row with CODIGO", source, sheet.Name))
				continue
			}
			headerFound = true
			fileRows = append(fileRows, rows...)
		}
		if !headerFound {
			continue
		}

		// The row index resets per file, not per catalog; uniqueness holds
		// because (source, usage, index) is unique by construction.
		for i, row := range fileRows {
			cat = append(cat, assembleRow(source, i, row))
		}
		report.RowsBySource[source] = len(fileRows)
	}

	report.Rows = len(cat)
	report.Elapsed = time.Since(start)
	if len(cat) == 0 {
		return cat, report, ErrNoData
	}
	return cat, report, nil
}

func assembleRow(source string, index int, row NormalizedRow) internal.CatalogRow {
	searchText := util.CollapseSpaces(strings.ToUpper(
		row.Code + " " + row.Product + " " + row.Brand + " " + row.Model,
	))
	label := strings.ToUpper(row.Brand) + " | " + row.Usage + " | S/ " + util.FormatPrice(row.Price)

	return internal.CatalogRow{
		UID:        source + "|" + row.Usage + "|" + strconv.Itoa(index),
		Source:     source,
		Usage:      row.Usage,
		Code:       row.Code,
		Product:    row.Product,
		Brand:      row.Brand,
		Model:      row.Model,
		Price:      row.Price,
		ListPrice:  row.ListPrice,
		SearchText: searchText,
		Label:      label,
	}
}

// MetadataStore is the slice of storage the loader needs to stamp a pass.
type MetadataStore interface {
	SetMetadata(key, value string) error
}

// Loader runs ingestion passes and records when the catalog was last built.
type Loader struct {
	dir  string
	meta MetadataStore
}

// NewLoader builds a loader over the supplier directory. meta may be nil
// when no database is around (pure read commands).
func NewLoader(dir string, meta MetadataStore) *Loader {
	return &Loader{dir: dir, meta: meta}
}

func (l *Loader) Load() (internal.Catalog, IngestReport, error) {
	cat, report, err := LoadDir(l.dir)
	if err != nil && !errors.Is(err, ErrNoData) {
		return nil, report, err
	}
	if l.meta != nil {
		_ = l.meta.SetMetadata("catalog.last_load", time.Now().UTC().Format(time.RFC3339))
		_ = l.meta.SetMetadata("catalog.last_load_rows", strconv.Itoa(report.Rows))
	}
	return cat, report, err
}
