package rinex

import (
	_ "embed"
	"strings"
)

// The assigned ISO 3166-1 alpha-3 codes, one per line.
//
//go:embed iso3166_alpha3.dat
var countryData string

var countryCodes = make(map[string]struct{}, 249)

func init() {
	for _, code := range strings.Fields(countryData) {
		countryCodes[code] = struct{}{}
	}
}

// IsCountryCode reports whether code is an assigned ISO 3166-1 alpha-3
// country code like BEL or DEU. Comparison is case sensitive, as RINEX
// filenames use the upper-case codes.
func IsCountryCode(code string) bool {
	_, ok := countryCodes[code]
	return ok
}
