package rinex

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LocationKey is the archive directory pair a file is expected to live in,
// derived from its start time. Components are kept as rendered strings, so
// the day of year stays zero padded.
type LocationKey struct {
	Year string `json:"year"`
	Doy  string `json:"doy"`
}

// String returns the key as a relative path, e.g. "2018/310".
func (k LocationKey) String() string {
	return k.Year + "/" + k.Doy
}

// ExpectedLocation returns the archive location a file starting at t
// belongs to: a year directory containing a day-of-year directory.
func ExpectedLocation(t StartTime) LocationKey {
	return LocationKey{
		Year: fmt.Sprintf("%04d", t.Year),
		Doy:  fmt.Sprintf("%03d", t.Doy),
	}
}

// MatchesPath reports whether the file at path sits in the expected
// year/doy directory pair, i.e. whether the two innermost directories
// equal the key exactly. Paths with fewer than two directories never match.
func (k LocationKey) MatchesPath(path string) bool {
	return k.Matches(DirComponents(path))
}

// Matches reports whether the directory components dirs, innermost last,
// end with the year/doy pair of the key.
func (k LocationKey) Matches(dirs []string) bool {
	if len(dirs) < 2 {
		return false
	}
	return dirs[len(dirs)-2] == k.Year && dirs[len(dirs)-1] == k.Doy
}

// DirComponents returns the cleaned components of the directory the file
// at path sits in, innermost last, for use with Matches. Dir cleans the
// path, so dot and parent segments are resolved first.
func DirComponents(path string) []string {
	dir := filepath.ToSlash(filepath.Dir(path))
	segs := strings.Split(dir, "/")
	comps := segs[:0]
	for _, seg := range segs {
		if seg != "" && seg != "." {
			comps = append(comps, seg)
		}
	}
	return comps
}
