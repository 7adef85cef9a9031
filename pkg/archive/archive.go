// Package archive checks RINEX3 file archives. Every file below a root
// directory is validated against the long filename convention and against
// the year/doy directory pair it is expected to be archived in.
package archive

import (
	"errors"
	"path/filepath"

	"github.com/gnsslab/rnxcheck/pkg/rinex"
)

// LocationStatus is the outcome of the location check of a single file.
type LocationStatus int

// Location outcomes. The check is skipped for invalid names, as no
// expected location can be derived from them.
const (
	LocationSkipped LocationStatus = iota
	LocationOK
	LocationMismatch
)

func (s LocationStatus) String() string {
	return [...]string{"skipped", "ok", "mismatch"}[s]
}

// MarshalText encodes the status as its name.
func (s LocationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of checking a single file or name.
type Result struct {
	Path     string                  `json:"path,omitempty"`     // as given, empty for bare names
	Name     string                  `json:"name"`               // the checked filename
	Parsed   *rinex.ParsedName       `json:"parsed,omitempty"`   // nil for invalid names
	Err      *rinex.InvalidNameError `json:"error,omitempty"`    // nil for valid names
	Expected *rinex.LocationKey      `json:"expected,omitempty"` // nil for invalid names
	Location LocationStatus          `json:"location"`
	Warnings []string                `json:"warnings,omitempty"`
}

// Valid reports whether the name satisfies the naming convention.
func (r Result) Valid() bool {
	return r.Err == nil
}

// CheckName checks the RINEX3 filename name and the directory components
// dir the file sits in, innermost last, against the expected archive
// location. Fewer than two components never match.
func CheckName(name string, dir []string) Result {
	res := Result{Name: name}
	rnx, err := rinex.ParseName(name)
	if err != nil {
		var nameErr *rinex.InvalidNameError
		if errors.As(err, &nameErr) {
			res.Err = nameErr
		}
		return res
	}
	res.Parsed = rnx
	res.Warnings = rnx.Warnings()

	loc := rinex.ExpectedLocation(rnx.StartTime)
	res.Expected = &loc
	if loc.Matches(dir) {
		res.Location = LocationOK
	} else {
		res.Location = LocationMismatch
	}
	return res
}

// CheckPath checks the file at path, validating its basename and its
// year/doy location in the directory tree.
func CheckPath(path string) Result {
	res := CheckName(filepath.Base(path), rinex.DirComponents(path))
	res.Path = path
	return res
}
