package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  ParsedName
	}{
		{
			name:  "full listing",
			input: "P225/65R17 CLOUTABLE 100S",
			want:  ParsedName{Model: "P225", LoadIndex: "100", SpeedRating: "S", Studdable: "yes", Size: "P225/65R17"},
		},
		{
			name:  "metric size without P",
			input: "205/55R16 91H ALL SEASON",
			want:  ParsedName{Model: "205", LoadIndex: "91", SpeedRating: "H", Size: "205/55R16"},
		},
		{
			name:  "lowercase start has no model",
			input: "pneu hiver 225/45R18 95T",
			want:  ParsedName{LoadIndex: "95", SpeedRating: "T", Size: "225/45R18"},
		},
		{
			name:  "model stops at first non alphanumeric",
			input: "XICE3-SNOW 215/60R16",
			want:  ParsedName{Model: "XICE3", Size: "215/60R16"},
		},
		{
			name:  "studdable english mixed case",
			input: "Winter Studdable tire",
			want:  ParsedName{Model: "W", Studdable: "yes"},
		},
		{
			name:  "first load token wins",
			input: "ICE 94T 98H",
			want:  ParsedName{Model: "ICE", LoadIndex: "94", SpeedRating: "T"},
		},
		{
			name:  "four digits are not a load index",
			input: "X 1000S",
			want:  ParsedName{Model: "X"},
		},
		{
			name:  "token glued to letters is not standalone",
			input: "ABC100S",
			want:  ParsedName{Model: "ABC100S"},
		},
		{
			name:  "two letters after digits do not match",
			input: "Tire 100SL",
			want:  ParsedName{Model: "T"},
		},
		{
			name:  "first size wins",
			input: "KIT 195/65R15 205/55R16",
			want:  ParsedName{Model: "KIT", Size: "195/65R15"},
		},
		{
			name:  "leading space means no model",
			input: " P225/65R17",
			want:  ParsedName{Size: "P225/65R17"},
		},
		{
			name:  "accented letters glued before the token",
			input: "PNEU ÉTÉ100S",
			want:  ParsedName{Model: "PNEU"},
		},
		{
			name:  "accented letter glued after the token",
			input: "HIVER 100Sé",
			want:  ParsedName{Model: "HIVER"},
		},
		{
			name:  "underscore is a word character",
			input: "X 100S_B",
			want:  ParsedName{Model: "X"},
		},
		{
			name:  "punctuation bounds the token",
			input: "HIVER (100S)",
			want:  ParsedName{Model: "HIVER", LoadIndex: "100", SpeedRating: "S"},
		},
		{
			name:  "glued candidate skipped for a later standalone one",
			input: "ÉTÉ100S 91H",
			want:  ParsedName{LoadIndex: "91", SpeedRating: "H"},
		},
		{
			name:  "full width digits",
			input: "X １００S",
			want:  ParsedName{Model: "X", LoadIndex: "１００", SpeedRating: "S"},
		},
		{
			name:  "full width size",
			input: "１２３/45R17",
			want:  ParsedName{Size: "１２３/45R17"},
		},
		{
			name:  "empty",
			input: "",
			want:  ParsedName{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseName(tc.input))
		})
	}
}

func TestParseNameLoadSpeedReconstructsToken(t *testing.T) {
	for _, token := range []string{"90T", "100S", "91H", "121R"} {
		got := ParseName("tire " + token + " winter")
		assert.Equal(t, token, got.LoadIndex+got.SpeedRating)
	}
}

func TestParseNameStuddableNeverNo(t *testing.T) {
	for _, name := range []string{"SUMMER 91V", "cloutable", "STUDDABLE", "non-studded"} {
		got := ParseName(name).Studdable
		assert.Contains(t, []string{"", "yes"}, got)
	}
	assert.Equal(t, "", ParseName("non-studded").Studdable)
}

func TestParseNameBrandAndTypeStayEmpty(t *testing.T) {
	got := ParseName("MICHELIN X-ICE SNOW SUV 235/65R17 108T")
	assert.Empty(t, got.Brand)
	assert.Empty(t, got.Type)
}
