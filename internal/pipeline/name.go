package pipeline

import (
	"regexp"

	"tires/internal/util"
)

var (
	modelPattern     = regexp.MustCompile(`^[A-Z0-9]+`)
	loadSpeedPattern = regexp.MustCompile(`(\p{Nd}{2,3})([A-Z])`)
	sizePattern      = regexp.MustCompile(`P?\p{Nd}{3}/\p{Nd}{2}R\p{Nd}{2}`)

	studdableMarkers = []string{"CLOUTABLE", "STUDDABLE"}
)

const (
	studdableYes = "yes"
	sizeLabel    = "Size:"
)

// ParsedName holds the fields extracted from a product name. Unmatched
// fields are empty strings. Brand and Type have no extraction rule.
type ParsedName struct {
	Brand       string
	Model       string
	LoadIndex   string
	SpeedRating string
	Studdable   string
	Size        string
	Type        string
}

// ParseName extracts model, load index, speed rating, studdable flag and size
// code from a free-text tire name such as "P225/65R17 CLOUTABLE 100S".
func ParseName(name string) ParsedName {
	var out ParsedName

	out.Model = modelPattern.FindString(name)

	out.LoadIndex, out.SpeedRating = findLoadSpeed(name)

	if util.ContainsAnyUpper(name, studdableMarkers...) {
		out.Studdable = studdableYes
	}

	out.Size = util.StripLabel(sizePattern.FindString(name), sizeLabel)

	return out
}

// findLoadSpeed returns the digits and letter of the first standalone token
// like "100S" or "91H". Letters and digits of any script count as part of a
// word, so "ÉTÉ100S" and "100Sé" carry no token.
func findLoadSpeed(name string) (string, string) {
	for _, m := range loadSpeedPattern.FindAllStringSubmatchIndex(name, -1) {
		if util.IsStandalone(name, m[0], m[1]) {
			return name[m[2]:m[3]], name[m[4]:m[5]]
		}
	}
	return "", ""
}
