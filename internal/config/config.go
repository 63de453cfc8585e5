package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath      string
	DatabaseURL string
	OutputDir   string

	CSVDelimiter rune

	LogLevel    string
	MetricsFile string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	delimiter, err := parseDelimiter(getEnv("TIRES_CSV_DELIMITER", ","))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:      getEnv("TIRES_DB_PATH", filepath.Join(cwd, "data", "tires.db")),
		DatabaseURL: getEnv("TIRES_DATABASE_URL", ""),
		OutputDir:   getEnv("TIRES_OUTPUT_DIR", filepath.Join(cwd, "out")),

		CSVDelimiter: delimiter,

		LogLevel:    getEnv("TIRES_LOG_LEVEL", "info"),
		MetricsFile: getEnv("TIRES_METRICS_FILE", ""),
	}

	return cfg, nil
}

// UsesPostgres reports whether records go to Postgres instead of SQLite.
func (c Config) UsesPostgres() bool {
	url := strings.ToLower(strings.TrimSpace(c.DatabaseURL))
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func parseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "", ",":
		return ',', nil
	case `\t`, "tab", "\t":
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("TIRES_CSV_DELIMITER must be a single character, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("TIRES_CSV_DELIMITER %q is not usable as a delimiter", value)
	}
	return r, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
