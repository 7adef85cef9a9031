// Package rinex implements parsing and validation of RINEX3 long filenames.
//
// The long filename convention encodes the station, the data source, the
// nominal start time, the file period, the data frequency and the data type
// directly in the filename, e.g.
//
//	BRUX00BEL_R_20183101900_01H_30S_MO.rnx
//
// ParseName decomposes such a name into typed fields and reports every
// violated naming rule at once. ExpectedLocation derives the year and
// day-of-year directories a file is expected to be archived in.
// See the format documentation at https://igs.org/formats-and-standards/.
package rinex

import (
	"fmt"
	"time"

	"github.com/gnsslab/rnxcheck/pkg/gnss"
)

// DataSource indicates how the data in the file was collected.
type DataSource int

// Available data sources.
const (
	SourceReceiver DataSource = iota + 1 // from receiver data, using vendor or other software
	SourceStream                         // from a real-time data stream, RTCM or other
)

func (src DataSource) String() string {
	return [...]string{"", "R", "S"}[src]
}

// MarshalText encodes the source as its one-letter filename code.
func (src DataSource) MarshalText() ([]byte, error) {
	return []byte(src.String()), nil
}

// PeriodUnit is the unit of the intended collection period of a file.
type PeriodUnit int

// Available file-period units.
const (
	PeriodHours PeriodUnit = iota + 1
	PeriodDays
	PeriodMinutes
	PeriodUnspecified
)

func (u PeriodUnit) String() string {
	return [...]string{"", "H", "D", "M", "U"}[u]
}

// FilePeriod is the intended collection period of a file, e.g. 01D.
type FilePeriod struct {
	Length int
	Unit   PeriodUnit
}

// String returns the period in filename form, zero-padded to two digits.
func (p FilePeriod) String() string {
	return fmt.Sprintf("%02d%s", p.Length, p.Unit)
}

// MarshalText encodes the period in filename form like 01D.
func (p FilePeriod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// FreqUnit is the unit of the data frequency, i.e. the sampling rate.
type FreqUnit int

// Available data-frequency units.
const (
	FreqSeconds     FreqUnit = iota + 1 // S
	FreqHertz                           // Z
	Freq100Hertz                        // C
	FreqUnspecified                     // U
)

func (u FreqUnit) String() string {
	return [...]string{"", "S", "Z", "C", "U"}[u]
}

// DataFreq is the data frequency of an observation or meteo file, e.g. 30S.
type DataFreq struct {
	Length int
	Unit   FreqUnit
}

// String returns the frequency in filename form, zero-padded to two digits.
func (f DataFreq) String() string {
	return fmt.Sprintf("%02d%s", f.Length, f.Unit)
}

// MarshalText encodes the frequency in filename form like 30S.
func (f DataFreq) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// DataKind classifies the content addressed by a data-type code.
type DataKind int

// Data kinds.
const (
	KindObs DataKind = iota + 1
	KindNav
	KindMeteo
)

func (k DataKind) String() string {
	return [...]string{"", "observation", "navigation", "meteorological"}[k]
}

// DataType is the two-character data-type code of the filename, e.g. MO for
// mixed observation data. The first character indicates the satellite
// system, the second one the data kind.
type DataType string

// dataTypes lists the supported data-type codes.
var dataTypes = map[DataType]DataKind{
	"MO": KindObs,
	"MN": KindNav,
	"MM": KindMeteo,
	"HN": KindNav,
	"ON": KindNav,
}

// Kind returns the data kind the code addresses, or the zero DataKind for
// codes that are not supported.
func (t DataType) Kind() DataKind {
	return dataTypes[t]
}

// System returns the satellite system indicated by the first character of
// the code. ok is false for codes that do not carry a system.
func (t DataType) System() (sys gnss.System, ok bool) {
	if t == "" {
		return 0, false
	}
	return gnss.SystemByAbbr(string(t[0]))
}

// Format is the file format given by the first filename extension.
type Format int

// Available formats. Hatanaka compaction is defined for observation data only.
const (
	FormatRnx Format = iota + 1 // plain RINEX
	FormatCrx                   // Hatanaka-compressed RINEX
)

func (f Format) String() string {
	return [...]string{"", "rnx", "crx"}[f]
}

// MarshalText encodes the format as its filename extension.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Compression is the optional compression extension of a filename.
type Compression int

// Available compressions. The zero value means uncompressed.
const (
	CompressionNone Compression = iota
	CompressionGzip
)

func (c Compression) String() string {
	return [...]string{"", "gz"}[c]
}

// MarshalText encodes the compression as its filename extension, empty if none.
func (c Compression) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// StartTime is the nominal start time of the first observation, encoded in
// the filename as YYYYDDDHHMM.
type StartTime struct {
	Year int // Gregorian year, 4 digits.
	Doy  int // Day of year, 1-366 in any year.
	Hour int
	Min  int
}

// String returns the start time in filename form YYYYDDDHHMM.
func (t StartTime) String() string {
	return fmt.Sprintf("%04d%03d%02d%02d", t.Year, t.Doy, t.Hour, t.Min)
}

// MarshalText encodes the start time in filename form.
func (t StartTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Time returns the start time as UTC time. The day of year is not checked
// against the calendar, so day 366 of a common year rolls over to January 1.
func (t StartTime) Time() time.Time {
	return ParseDoy(t.Year, t.Doy).Add(time.Duration(t.Hour)*time.Hour + time.Duration(t.Min)*time.Minute)
}

// ParseDoy returns the UTC-Time corresponding to the given year and day of year.
func ParseDoy(year, doy int) time.Time {
	t := time.Date(year, 1, 0, 0, 0, 0, 0, time.UTC)
	return t.Add(time.Duration(doy) * time.Hour * 24)
}
