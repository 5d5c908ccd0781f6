package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"cotizador/internal"
	"cotizador/internal/config"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

type DB struct {
	conn   *sql.DB
	driver string
}

// Open picks the backend from configuration: a Postgres DSN when
// URL_BASE_DE_DATOS is set, otherwise a local sqlite file.
func Open(cfg config.Config) (*DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := sql.Open(driverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := conn.Ping(); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return initDB(&DB{conn: conn, driver: driverPostgres})
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, err
	}
	conn, err := sql.Open(driverSQLite, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return initDB(&DB{conn: conn, driver: driverSQLite})
}

func initDB(d *DB) (*DB, error) {
	if err := d.init(); err != nil {
		_ = d.conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS cotizaciones (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  cotizador TEXT,
  cliente TEXT,
  producto TEXT,
  cantidad INTEGER,
  precio_unitario REAL,
  total REAL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if d.driver == driverPostgres {
		schema = `
CREATE TABLE IF NOT EXISTS cotizaciones (
  id SERIAL PRIMARY KEY,
  cotizador TEXT,
  cliente TEXT,
  producto TEXT,
  cantidad INTEGER,
  precio_unitario NUMERIC,
  total NUMERIC,
  created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TIMESTAMP NOT NULL DEFAULT NOW()
);
`
	}

	_, err := d.conn.Exec(schema)
	return err
}

// rebind converts ?-style placeholders to the $n style lib/pq expects.
func (d *DB) rebind(query string) string {
	if d.driver != driverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InsertQuote persists one quotation as a single transactional unit and
// returns its assigned id. Partial writes never occur.
func (d *DB) InsertQuote(q internal.QuoteRow) (int64, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	if d.driver == driverPostgres {
		err = tx.QueryRow(d.rebind(`
INSERT INTO cotizaciones (cotizador, cliente, producto, cantidad, precio_unitario, total)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id
`), q.Cotizador, q.Cliente, q.Producto, q.Cantidad, q.PrecioUnitario, q.Total).Scan(&id)
		if err != nil {
			return 0, err
		}
	} else {
		result, err := tx.Exec(`
INSERT INTO cotizaciones (cotizador, cliente, producto, cantidad, precio_unitario, total)
VALUES (?, ?, ?, ?, ?, ?)
`, q.Cotizador, q.Cliente, q.Producto, q.Cantidad, q.PrecioUnitario, q.Total)
		if err != nil {
			return 0, err
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListQuotes returns up to limit quotations, newest first.
func (d *DB) ListQuotes(limit int) ([]internal.QuoteRow, error) {
	query := `
SELECT id, cotizador, cliente, producto, cantidad, precio_unitario, total, created_at
FROM cotizaciones ORDER BY id DESC LIMIT ?`
	if d.driver == driverPostgres {
		query = strings.Replace(query, "created_at", "created_at::text", 1)
	}

	rows, err := d.conn.Query(d.rebind(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.QuoteRow
	for rows.Next() {
		var q internal.QuoteRow
		if err := rows.Scan(&q.ID, &q.Cotizador, &q.Cliente, &q.Producto, &q.Cantidad, &q.PrecioUnitario, &q.Total, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(d.rebind(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`), key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(d.rebind(`SELECT value FROM metadata WHERE key = ?`), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// Driver reports which backend was opened, for startup logging.
func (d *DB) Driver() string {
	return d.driver
}
