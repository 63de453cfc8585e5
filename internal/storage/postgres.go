package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"tires/internal"
)

type PostgresStore struct {
	db *sql.DB
}

var _ RecordStore = (*PostgresStore)(nil)

// OpenPostgres connects, retrying the ping while the server comes up, and
// creates the schema.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS import_runs (
			id         UUID        PRIMARY KEY,
			source     TEXT        NOT NULL,
			row_count  INTEGER     NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tire_records (
			id           SERIAL PRIMARY KEY,
			run_id       UUID    NOT NULL REFERENCES import_runs(id),
			row_no       INTEGER NOT NULL,
			name         TEXT    NOT NULL DEFAULT '',
			brand        TEXT    NOT NULL DEFAULT '',
			image        TEXT    NOT NULL DEFAULT '',
			price        TEXT    NOT NULL DEFAULT '',
			size         TEXT    NOT NULL DEFAULT '',
			type         TEXT    NOT NULL DEFAULT '',
			model        TEXT    NOT NULL DEFAULT '',
			load_index   TEXT    NOT NULL DEFAULT '',
			speed_rating TEXT    NOT NULL DEFAULT '',
			studdable    TEXT    NOT NULL DEFAULT '',
			UNIQUE (run_id, row_no)
		);

		CREATE INDEX IF NOT EXISTS idx_tire_records_size  ON tire_records(size);
		CREATE INDEX IF NOT EXISTS idx_tire_records_model ON tire_records(model);
	`)
	return err
}

func (ps *PostgresStore) SaveRun(source string, records []internal.TireRecord) (internal.ImportRun, error) {
	run := newRun(source, len(records))

	tx, err := ps.db.Begin()
	if err != nil {
		return internal.ImportRun{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO import_runs (id, source, row_count, created_at) VALUES ($1, $2, $3, $4)`,
		run.ID, run.Source, run.RowCount, run.CreatedAt,
	); err != nil {
		return internal.ImportRun{}, fmt.Errorf("postgres: insert run: %w", err)
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := insertBatch(tx, run.ID, i, records[i:end]); err != nil {
			return internal.ImportRun{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return internal.ImportRun{}, err
	}
	return run, nil
}

func insertBatch(tx *sql.Tx, runID string, offset int, batch []internal.TireRecord) error {
	const cols = 12
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, r := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for c := range placeholders {
			placeholders[c] = fmt.Sprintf("$%d", base+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			runID, offset+idx+1, r.Name, r.Brand, r.Image, r.Price, r.Size, r.Type,
			r.Model, r.LoadIndex, r.SpeedRating, r.Studdable)
	}

	query := fmt.Sprintf(`
		INSERT INTO tire_records
			(run_id, row_no, name, brand, image, price, size, type, model, load_index, speed_rating, studdable)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	if _, err := tx.Exec(query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert records: %w", err)
	}
	return nil
}

func (ps *PostgresStore) ListRuns(limit int) ([]internal.ImportRun, error) {
	rows, err := ps.db.Query(`
		SELECT id, source, row_count, created_at
		FROM import_runs
		ORDER BY created_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: list runs: %w", err)
	}
	defer rows.Close()

	out := []internal.ImportRun{}
	for rows.Next() {
		var run internal.ImportRun
		var created time.Time
		if err := rows.Scan(&run.ID, &run.Source, &run.RowCount, &created); err != nil {
			return nil, fmt.Errorf("postgres: scan run: %w", err)
		}
		run.CreatedAt = formatCreatedAt(created)
		out = append(out, run)
	}
	return out, rows.Err()
}

func (ps *PostgresStore) ListRecords(runID string) ([]internal.TireRecord, error) {
	rows, err := ps.db.Query(`
		SELECT name, brand, image, price, size, type, model, load_index, speed_rating, studdable
		FROM tire_records
		WHERE run_id = $1
		ORDER BY row_no
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
