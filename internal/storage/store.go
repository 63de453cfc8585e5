package storage

import (
	"time"

	"github.com/google/uuid"

	"tires/internal"
	"tires/internal/config"
)

// RecordStore persists normalized import runs.
type RecordStore interface {
	SaveRun(source string, records []internal.TireRecord) (internal.ImportRun, error)
	ListRuns(limit int) ([]internal.ImportRun, error)
	ListRecords(runID string) ([]internal.TireRecord, error)
	Close() error
}

// Open returns a Postgres store when TIRES_DATABASE_URL is a postgres URL,
// and the SQLite store at cfg.DBPath otherwise.
func Open(cfg config.Config) (RecordStore, error) {
	if cfg.UsesPostgres() {
		return OpenPostgres(cfg.DatabaseURL)
	}
	return OpenSQLite(cfg.DBPath)
}

// createdAtLayout keeps nanoseconds at a fixed width so text order is time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

func newRun(source string, rows int) internal.ImportRun {
	return internal.ImportRun{
		ID:        uuid.NewString(),
		Source:    source,
		RowCount:  rows,
		CreatedAt: formatCreatedAt(time.Now()),
	}
}
