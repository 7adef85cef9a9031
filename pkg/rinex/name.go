package rinex

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParsedName holds the decoded fields of a valid RINEX3 long filename.
// It is only ever built from a name that satisfies every rule of the
// convention; use ParseName to obtain one.
type ParsedName struct {
	SiteCode       string      `json:"siteCode"`       // 4 characters, canonically upper case
	MonumentNumber int         `json:"monumentNumber"` // 0-9
	ReceiverNumber int         `json:"receiverNumber"` // 0-9
	CountryCode    string      `json:"countryCode"`    // ISO 3166-1 alpha-3
	DataSource     DataSource  `json:"dataSource"`
	StartTime      StartTime   `json:"startTime"`
	FilePeriod     FilePeriod  `json:"filePeriod"`
	DataFreq       *DataFreq   `json:"dataFreq,omitempty"` // nil for data types without one
	DataType       DataType    `json:"dataType"`
	Format         Format      `json:"format"`
	Compression    Compression `json:"compression,omitempty"`

	warnings []string
}

// Codes allowed per field.
var (
	dataSources  = map[string]DataSource{"R": SourceReceiver, "S": SourceStream}
	periodUnits  = map[string]PeriodUnit{"H": PeriodHours, "D": PeriodDays, "M": PeriodMinutes, "U": PeriodUnspecified}
	freqUnits    = map[string]FreqUnit{"S": FreqSeconds, "Z": FreqHertz, "C": Freq100Hertz, "U": FreqUnspecified}
	formats      = map[string]Format{"rnx": FormatRnx, "crx": FormatCrx}
	compressions = map[string]Compression{"gz": CompressionGzip}
)

// ParseName parses the RINEX3 long filename name and returns its typed
// fields. Directory components are stripped first, so a path may be given
// as well.
//
// ParseName is total: no input makes it panic. If the name violates the
// convention the returned error is an *InvalidNameError carrying every
// violated rule, and the parsed name is nil. Exactly one of the two results
// is non-nil.
func ParseName(name string) (*ParsedName, error) {
	p := &nameParser{}
	p.parse(name)
	if len(p.violations) > 0 {
		return nil, &InvalidNameError{Name: name, Violations: p.violations}
	}
	return &p.parsed, nil
}

// IsValidName reports whether name is a valid RINEX3 long filename.
func IsValidName(name string) bool {
	_, err := ParseName(name)
	return err == nil
}

// String returns the canonical filename for the parsed fields.
func (p *ParsedName) String() string {
	var fn strings.Builder
	fn.WriteString(p.SiteCode)
	fn.WriteString(strconv.Itoa(p.MonumentNumber))
	fn.WriteString(strconv.Itoa(p.ReceiverNumber))
	fn.WriteString(p.CountryCode)
	fn.WriteString("_")
	fn.WriteString(p.DataSource.String())
	fn.WriteString("_")
	fn.WriteString(p.StartTime.String())
	fn.WriteString("_")
	fn.WriteString(p.FilePeriod.String())
	fn.WriteString("_")
	if p.DataFreq != nil {
		fn.WriteString(p.DataFreq.String())
		fn.WriteString("_")
	}
	fn.WriteString(string(p.DataType))
	fn.WriteString(".")
	fn.WriteString(p.Format.String())
	if p.Compression != CompressionNone {
		fn.WriteString(".")
		fn.WriteString(p.Compression.String())
	}
	return fn.String()
}

// NineCharID returns the long station identifier XXXXMRCCC, e.g. BRUX00BEL.
func (p *ParsedName) NineCharID() string {
	return fmt.Sprintf("%s%d%d%s", p.SiteCode, p.MonumentNumber, p.ReceiverNumber, p.CountryCode)
}

// IsObsType returns true if the file is a RINEX observation file type.
func (p *ParsedName) IsObsType() bool {
	return p.DataType.Kind() == KindObs
}

// IsNavType returns true if the file is a RINEX navigation file type.
func (p *ParsedName) IsNavType() bool {
	return p.DataType.Kind() == KindNav
}

// IsMeteoType returns true if the file is a RINEX meteo file type.
func (p *ParsedName) IsMeteoType() bool {
	return p.DataType.Kind() == KindMeteo
}

// Warnings returns non-fatal advisories collected while parsing, e.g. a
// country code that is no assigned ISO 3166-1 alpha-3 code.
func (p *ParsedName) Warnings() []string {
	return p.warnings
}

// nameParser accumulates fields and violations over the parse stages.
// Stages that depend on a failed earlier stage are skipped, independent
// stages always run, so one parse reports every simultaneous violation.
type nameParser struct {
	parsed     ParsedName
	violations []Violation
}

func (p *nameParser) violate(field string, rule Rule, format string, args ...interface{}) {
	p.violations = append(p.violations, Violation{Field: field, Rule: rule, Msg: fmt.Sprintf(format, args...)})
}

func (p *nameParser) parse(name string) {
	if name == "" {
		p.violate(FieldFilename, RuleStructure, "name is empty")
		return
	}
	if !utf8.ValidString(name) {
		p.violate(FieldFilename, RuleUnparseable, "name is not valid UTF-8")
		return
	}

	body, ext, hasExt := strings.Cut(filepath.Base(name), ".")

	segs := strings.Split(body, "_")
	freqPresent := len(segs) == 6
	bodyOK := len(segs) == 5 || freqPresent
	if !bodyOK {
		p.violate(FieldFilename, RuleStructure, "%d underscore-separated fields, want 5 or 6", len(segs))
	}

	typeOK := false
	if bodyOK {
		p.parseSite(segs[0])
		p.parseSource(segs[1])
		p.parseStartTime(segs[2])
		p.parsePeriod(segs[3])
		if freqPresent {
			p.parseFreq(segs[4])
		}
		typeOK = p.parseType(segs[len(segs)-1])
	}

	formatOK := p.parseExtensions(ext, hasExt)

	// Conditional presence: obs and meteo data carry a frequency, nav data must not.
	if bodyOK && typeOK {
		needsFreq := p.parsed.DataType.Kind() != KindNav
		if needsFreq && !freqPresent {
			p.violate(FieldDataFreq, RuleConditional, "data type %s requires a data-frequency field", p.parsed.DataType)
		} else if !needsFreq && freqPresent {
			p.violate(FieldDataFreq, RuleConditional, "data type %s must not have a data-frequency field", p.parsed.DataType)
		}
	}

	if typeOK && formatOK && p.parsed.Format == FormatCrx && p.parsed.DataType.Kind() != KindObs {
		p.violate(FieldFormat, RuleCrossField, "crx format requires an observation data type, not %s", p.parsed.DataType)
	}
}

// parseSite decodes the 9-character station identifier XXXXMRCCC.
func (p *nameParser) parseSite(seg string) {
	if len(seg) != 9 {
		p.violate(FieldSiteCode, RuleStructure, "station identifier %q has %d characters, want 9", seg, len(seg))
		return
	}
	site, monument, receiver, country := seg[:4], seg[4:5], seg[5:6], seg[6:9]

	if isAlnum(site) {
		p.parsed.SiteCode = strings.ToUpper(site)
	} else {
		p.violate(FieldSiteCode, RuleCharset, "site code %q must be alphanumeric", site)
	}
	if isDigits(monument) {
		p.parsed.MonumentNumber, _ = strconv.Atoi(monument)
	} else {
		p.violate(FieldMonument, RuleCharset, "monument number %q must be a digit", monument)
	}
	if isDigits(receiver) {
		p.parsed.ReceiverNumber, _ = strconv.Atoi(receiver)
	} else {
		p.violate(FieldReceiver, RuleCharset, "receiver number %q must be a digit", receiver)
	}
	if isUpperLetters(country) {
		p.parsed.CountryCode = country
		if !IsCountryCode(country) {
			p.parsed.warnings = append(p.parsed.warnings,
				fmt.Sprintf("country code %s is no assigned ISO 3166-1 alpha-3 code", country))
		}
	} else {
		p.violate(FieldCountry, RuleCharset, "country code %q must be three capital letters", country)
	}
}

func (p *nameParser) parseSource(seg string) {
	src, ok := dataSources[seg]
	if !ok {
		p.violate(FieldDataSource, RuleEnum, "data source %q must be R or S", seg)
		return
	}
	p.parsed.DataSource = src
}

// parseStartTime decodes the 11-digit start time YYYYDDDHHMM. The day of
// year is a plain 1-366 range in any year, by convention not tightened for
// leap years.
func (p *nameParser) parseStartTime(seg string) {
	if len(seg) != 11 {
		p.violate(FieldStartTime, RuleStructure, "start time %q has %d characters, want 11", seg, len(seg))
		return
	}
	if !isDigits(seg) {
		p.violate(FieldStartTime, RuleCharset, "start time %q must be all digits", seg)
		return
	}
	year, _ := strconv.Atoi(seg[:4])
	doy, _ := strconv.Atoi(seg[4:7])
	hour, _ := strconv.Atoi(seg[7:9])
	min, _ := strconv.Atoi(seg[9:11])
	if doy < 1 || doy > 366 {
		p.violate(FieldStartTime, RuleRange, "day of year %d out of range [1,366]", doy)
	}
	if hour > 23 {
		p.violate(FieldStartTime, RuleRange, "hour %d out of range [0,23]", hour)
	}
	if min > 59 {
		p.violate(FieldStartTime, RuleRange, "minute %d out of range [0,59]", min)
	}
	p.parsed.StartTime = StartTime{Year: year, Doy: doy, Hour: hour, Min: min}
}

func (p *nameParser) parsePeriod(seg string) {
	if len(seg) != 3 {
		p.violate(FieldFilePeriod, RuleStructure, "file period %q has %d characters, want 3", seg, len(seg))
		return
	}
	digitsOK := isDigits(seg[:2])
	if !digitsOK {
		p.violate(FieldFilePeriod, RuleCharset, "file period length %q must be two digits", seg[:2])
	}
	unit, unitOK := periodUnits[seg[2:]]
	if !unitOK {
		p.violate(FieldFilePeriod, RuleEnum, "file period unit %q must be one of H, D, M, U", seg[2:])
	}
	if digitsOK && unitOK {
		length, _ := strconv.Atoi(seg[:2])
		p.parsed.FilePeriod = FilePeriod{Length: length, Unit: unit}
	}
}

func (p *nameParser) parseFreq(seg string) {
	if len(seg) != 3 {
		p.violate(FieldDataFreq, RuleStructure, "data frequency %q has %d characters, want 3", seg, len(seg))
		return
	}
	digitsOK := isDigits(seg[:2])
	if !digitsOK {
		p.violate(FieldDataFreq, RuleCharset, "data frequency length %q must be two digits", seg[:2])
	}
	unit, unitOK := freqUnits[seg[2:]]
	if !unitOK {
		p.violate(FieldDataFreq, RuleEnum, "data frequency unit %q must be one of S, Z, C, U", seg[2:])
	}
	if digitsOK && unitOK {
		length, _ := strconv.Atoi(seg[:2])
		p.parsed.DataFreq = &DataFreq{Length: length, Unit: unit}
	}
}

func (p *nameParser) parseType(seg string) bool {
	t := DataType(seg)
	if _, ok := dataTypes[t]; !ok {
		p.violate(FieldDataType, RuleEnum, "data type %q is not supported", seg)
		return false
	}
	p.parsed.DataType = t
	return true
}

// parseExtensions decodes the extension chain FORMAT[.COMPRESSION] and
// reports whether a valid format was found.
func (p *nameParser) parseExtensions(ext string, hasExt bool) bool {
	if !hasExt {
		p.violate(FieldFormat, RuleStructure, "missing format extension")
		return false
	}
	segs := strings.Split(ext, ".")
	if len(segs) > 2 {
		p.violate(FieldFormat, RuleStructure, "%d extension fields, want format plus optional compression", len(segs))
		return false
	}
	format, formatOK := formats[segs[0]]
	if formatOK {
		p.parsed.Format = format
	} else {
		p.violate(FieldFormat, RuleEnum, "format %q must be rnx or crx", segs[0])
	}
	if len(segs) == 2 {
		comp, ok := compressions[segs[1]]
		if !ok {
			p.violate(FieldCompression, RuleEnum, "compression %q must be gz", segs[1])
		} else {
			p.parsed.Compression = comp
		}
	}
	return formatOK
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isUpperLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
