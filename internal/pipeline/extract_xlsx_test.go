package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func mkXLSX(rows [][]any) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	blob := mkXLSX([][]any{
		{},
		{"name", "image", "price"},
		{"P225/65R17 CLOUTABLE 100S", "img.jpg", "$123,45"},
		{},
		{"205/55R16 91H", "b.jpg"},
	})
	rows, err := parseXLSX(blob)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "P225/65R17 CLOUTABLE 100S", rows[0].Get("name"))
	assert.Equal(t, "$123,45", rows[0].Get("price"))
	assert.Equal(t, "205/55R16 91H", rows[1].Get("name"))
	assert.Equal(t, "", rows[1].Get("price"))
}

func TestParseXLSXHeaderOnly(t *testing.T) {
	rows, err := parseXLSX(mkXLSX([][]any{{"name", "price"}}))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseXLSXRejectsGarbage(t *testing.T) {
	_, err := parseXLSX([]byte("not a workbook"))
	require.Error(t, err)
}
