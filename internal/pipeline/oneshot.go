package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tires/internal"
)

type ReadOptions struct {
	// Delimiter for text input. When Source is picked by extension, .tsv
	// files always use tab.
	Delimiter rune
	// Source forces a reader. Empty picks one by file extension.
	Source internal.InputSource
}

// DefaultReadOptions picks the reader by extension.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Delimiter: ','}
}

// CSVReadOptions reads every file as comma-separated text whatever its name.
func CSVReadOptions() ReadOptions {
	return ReadOptions{Delimiter: ',', Source: internal.SourceDelimited}
}

func (o ReadOptions) sourceFor(path string) internal.InputSource {
	if o.Source != "" {
		return o.Source
	}
	return DetectSource(path)
}

// DetectSource picks the reader for a path by extension.
func DetectSource(path string) internal.InputSource {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return internal.SourceXLSX
	case ".html", ".htm":
		return internal.SourceHTMLTable
	default:
		return internal.SourceDelimited
	}
}

// ReadRows loads every data row of the file at path into memory, in file order.
func ReadRows(path string, opts ReadOptions) ([]internal.Row, error) {
	switch opts.sourceFor(path) {
	case internal.SourceXLSX:
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		rows, err := parseXLSX(blob)
		if err != nil {
			return nil, fmt.Errorf("parse xlsx %s: %w", path, err)
		}
		return rows, nil
	case internal.SourceHTMLTable:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rows, err := parseHTMLTable(newTextReader(f))
		if err != nil {
			return nil, fmt.Errorf("parse html %s: %w", path, err)
		}
		return rows, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		delimiter := opts.Delimiter
		if delimiter == 0 {
			delimiter = ','
		}
		if opts.Source == "" && strings.EqualFold(filepath.Ext(path), ".tsv") {
			delimiter = '\t'
		}
		rows, err := parseDelimited(f, delimiter)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return rows, nil
	}
}
