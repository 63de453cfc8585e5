package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const listing = "name,image,price\nP225/65R17 CLOUTABLE 100S,img.jpg,\"$123,45\"\n205/55R16 91H,,$89\n"

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("TIRES_DB_PATH", filepath.Join(dir, "data", "tires.db"))
	t.Setenv("TIRES_DATABASE_URL", "")
	t.Setenv("TIRES_OUTPUT_DIR", filepath.Join(dir, "out"))
	t.Setenv("TIRES_CSV_DELIMITER", ",")
	t.Setenv("TIRES_LOG_LEVEL", "error")
	t.Setenv("TIRES_METRICS_FILE", filepath.Join(dir, "tires.prom"))

	path := filepath.Join(dir, "listing.csv")
	require.NoError(t, os.WriteFile(path, []byte(listing), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNormalizeJSON(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "normalize", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"name\": \"P225/65R17 CLOUTABLE 100S\""))
	assert.Contains(t, out, `"price": "123.45"`)
}

func TestNormalizeYAML(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "normalize", path, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "speed_rating: S")
	assert.Contains(t, out, "studdable: \"yes\"")
}

func TestNormalizeRequiresFile(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, "normalize")
	require.Error(t, err)
}

func TestExportXLSXDefaultPath(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "export:xlsx", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 2 rows")

	target := filepath.Join(os.Getenv("TIRES_OUTPUT_DIR"), "listing.xlsx")
	f, err := excelize.OpenFile(target)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestStoreAndListRuns(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rows=2")

	out, err = execute(t, "runs")
	require.NoError(t, err)
	assert.Contains(t, out, "listing.csv")
}

func TestShowStoredRun(t *testing.T) {
	path := setupEnv(t)

	out, err := execute(t, "store", path)
	require.NoError(t, err)
	m := regexp.MustCompile(`run=(\S+)`).FindStringSubmatch(out)
	require.Len(t, m, 2)

	out, err = execute(t, "show", m[1])
	require.NoError(t, err)
	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "P225/65R17 CLOUTABLE 100S", records[0]["name"])
	assert.Equal(t, "123.45", records[0]["price"])
	assert.Equal(t, "91", records[1]["load_index"])

	out, err = execute(t, "show", m[1], "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "speed_rating: H")
}

func TestShowUnknownRunIsEmpty(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "show", "no-such-run")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestMetricsFileWritten(t *testing.T) {
	path := setupEnv(t)

	_, err := execute(t, "normalize", path)
	require.NoError(t, err)

	blob, err := os.ReadFile(os.Getenv("TIRES_METRICS_FILE"))
	require.NoError(t, err)
	assert.Contains(t, string(blob), "tires_records_total 2")
}

func TestDefaultExportPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "winter.xlsx"), defaultExportPath("out", "/data/winter.csv"))
	assert.Equal(t, filepath.Join("out", "list.xlsx"), defaultExportPath("out", "list.html"))
}
