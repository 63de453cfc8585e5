package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"tires/internal"
	"tires/internal/util"
)

func parseDelimited(r io.Reader, delimiter rune) ([]internal.Row, error) {
	reader := csv.NewReader(newTextReader(r))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []internal.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	out := []internal.Row{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(out)+1, err)
		}
		out = append(out, zipRow(headers, record))
	}
	return out, nil
}

func parseXLSX(content []byte) ([]internal.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []internal.Row{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	out := []internal.Row{}
	var headers []string
	for _, row := range rows {
		cells := trimCells(row)
		if isBlank(cells) {
			continue
		}
		if headers == nil {
			headers = cells
			continue
		}
		out = append(out, zipRow(headers, cells))
	}
	return out, nil
}

func parseHTMLTable(r io.Reader) ([]internal.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	out := []internal.Row{}
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}

		headers := []string{}
		rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, util.NormalizeSpaces(cell.Text()))
		})

		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, htmlCellValue(cell))
			})
			if isBlank(cells) {
				return
			}
			out = append(out, zipRow(headers, cells))
		})
		return false
	})

	return out, nil
}

// htmlCellValue is the cell text, or the src of an embedded image when the
// cell has no text.
func htmlCellValue(cell *goquery.Selection) string {
	text := util.NormalizeSpaces(cell.Text())
	if text != "" {
		return text
	}
	if src, ok := cell.Find("img").First().Attr("src"); ok {
		return strings.TrimSpace(src)
	}
	return ""
}

// zipRow keys cells by header. Short rows get "" for missing columns, surplus
// cells are dropped, and a repeated header keeps its last value.
func zipRow(headers, cells []string) internal.Row {
	row := make(internal.Row, len(headers))
	for i, h := range headers {
		if i < len(cells) {
			row[h] = cells[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i := range row {
		out[i] = util.Cell(row, i)
	}
	return out
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
