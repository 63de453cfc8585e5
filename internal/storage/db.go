package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"tires/internal"
)

type DB struct {
	conn *sql.DB
}

var _ RecordStore = (*DB)(nil)

func OpenSQLite(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS import_runs (
  id TEXT PRIMARY KEY,
  source TEXT NOT NULL,
  rowCount INTEGER NOT NULL,
  createdAt TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tire_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  runId TEXT NOT NULL,
  rowNo INTEGER NOT NULL,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  image TEXT NOT NULL,
  price TEXT NOT NULL,
  size TEXT NOT NULL,
  type TEXT NOT NULL,
  model TEXT NOT NULL,
  loadIndex TEXT NOT NULL,
  speedRating TEXT NOT NULL,
  studdable TEXT NOT NULL,
  UNIQUE(runId, rowNo),
  FOREIGN KEY(runId) REFERENCES import_runs(id)
);
CREATE INDEX IF NOT EXISTS idx_tire_records_size ON tire_records(size);
CREATE INDEX IF NOT EXISTS idx_tire_records_model ON tire_records(model);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) SaveRun(source string, records []internal.TireRecord) (internal.ImportRun, error) {
	run := newRun(source, len(records))

	tx, err := d.conn.Begin()
	if err != nil {
		return internal.ImportRun{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO import_runs (id, source, rowCount, createdAt) VALUES (?, ?, ?, ?)`,
		run.ID, run.Source, run.RowCount, run.CreatedAt,
	); err != nil {
		return internal.ImportRun{}, err
	}

	stmt, err := tx.Prepare(`
INSERT INTO tire_records (
  runId, rowNo, name, brand, image, price, size, type, model, loadIndex, speedRating, studdable
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return internal.ImportRun{}, err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(
			run.ID, i+1, r.Name, r.Brand, r.Image, r.Price, r.Size, r.Type,
			r.Model, r.LoadIndex, r.SpeedRating, r.Studdable,
		); err != nil {
			return internal.ImportRun{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return internal.ImportRun{}, err
	}
	return run, nil
}

func (d *DB) ListRuns(limit int) ([]internal.ImportRun, error) {
	rows, err := d.conn.Query(`
SELECT id, source, rowCount, createdAt
FROM import_runs ORDER BY createdAt DESC, id ASC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []internal.ImportRun{}
	for rows.Next() {
		var run internal.ImportRun
		if err := rows.Scan(&run.ID, &run.Source, &run.RowCount, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (d *DB) ListRecords(runID string) ([]internal.TireRecord, error) {
	rows, err := d.conn.Query(`
SELECT name, brand, image, price, size, type, model, loadIndex, speedRating, studdable
FROM tire_records WHERE runId = ? ORDER BY rowNo ASC
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]internal.TireRecord, error) {
	out := []internal.TireRecord{}
	for rows.Next() {
		var r internal.TireRecord
		if err := rows.Scan(
			&r.Name, &r.Brand, &r.Image, &r.Price, &r.Size, &r.Type,
			&r.Model, &r.LoadIndex, &r.SpeedRating, &r.Studdable,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
