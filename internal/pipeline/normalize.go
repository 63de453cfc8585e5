package pipeline

import (
	"tires/internal"
)

// BuildRecord maps one input row onto the fixed TireRecord schema. Missing
// columns yield empty fields; it never fails.
func BuildRecord(row internal.Row) internal.TireRecord {
	name := row.Get("name")
	parsed := ParseName(name)

	return internal.TireRecord{
		Name:        name,
		Brand:       parsed.Brand,
		Image:       row.Get("image"),
		Price:       NormalizePrice(row.Get("price")),
		Size:        parsed.Size,
		Type:        parsed.Type,
		Model:       parsed.Model,
		LoadIndex:   parsed.LoadIndex,
		SpeedRating: parsed.SpeedRating,
		Studdable:   parsed.Studdable,
	}
}

// BuildRecords builds one record per row, preserving order.
func BuildRecords(rows []internal.Row) []internal.TireRecord {
	out := make([]internal.TireRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, BuildRecord(row))
	}
	return out
}

// Summarize counts how many records carry each extracted field.
func Summarize(records []internal.TireRecord) internal.RunSummary {
	s := internal.RunSummary{Records: len(records)}
	for _, r := range records {
		if r.Size != "" {
			s.WithSize++
		}
		if r.Model != "" {
			s.WithModel++
		}
		if r.LoadIndex != "" {
			s.WithLoad++
		}
		if r.Studdable != "" {
			s.Studdable++
		}
	}
	return s
}
