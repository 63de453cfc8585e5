package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"tires/internal"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteJSON writes records as one indented JSON array. Non-ASCII text and
// HTML-significant characters are written literally.
func WriteJSON(w io.Writer, records []internal.TireRecord) error {
	if records == nil {
		records = []internal.TireRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}
	_, err := w.Write(unescapeLineSeparators(buf.Bytes()))
	return err
}

var lineSeparators = map[string]string{
	`\u2028`: "\u2028",
	`\u2029`: "\u2029",
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into the raw characters. Escaped backslashes are skipped
// as a pair, so source text spelling "\\u2028" stays as it is.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if b[i] != '\\' {
			out = append(out, b[i])
			i++
			continue
		}
		if i+6 <= len(b) {
			if raw, ok := lineSeparators[string(b[i:i+6])]; ok {
				out = append(out, raw...)
				i += 6
				continue
			}
		}
		// any other escape is copied whole so "\\" never pairs with what follows
		end := i + 2
		if end > len(b) {
			end = len(b)
		}
		out = append(out, b[i:end]...)
		i = end
	}
	return out
}

func WriteYAML(w io.Writer, records []internal.TireRecord) error {
	if records == nil {
		records = []internal.TireRecord{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

func WriteRecords(w io.Writer, records []internal.TireRecord, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return WriteJSON(w, records)
	case FormatYAML, "yml":
		return WriteYAML(w, records)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func ExportRecordsToXLSX(records []internal.TireRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range internal.RecordHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, record := range records {
		r := i + 2
		for col, value := range record.Values() {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			// strings keep prices like "123.45" and load indexes as text
			_ = f.SetCellStr(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
