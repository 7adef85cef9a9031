// Package gnss contains common constants and type definitions.
package gnss

// System is a satellite system.
type System int

// Available satellite systems.
const (
	SysGPS System = iota + 1
	SysGLO
	SysGAL
	SysQZSS
	SysBDS
	SysIRNSS
	SysSBAS
	SysMIXED
)

func (sys System) String() string {
	return [...]string{"", "GPS", "GLO", "GAL", "QZSS", "BDS", "IRNSS", "SBAS", "MIXED"}[sys]
}

// Abbr returns the systems' abbreviation used in RINEX.
func (sys System) Abbr() string {
	return [...]string{"", "G", "R", "E", "J", "C", "I", "S", "M"}[sys]
}

var sysPerAbbr = map[string]System{
	"G": SysGPS,
	"R": SysGLO,
	"E": SysGAL,
	"J": SysQZSS,
	"C": SysBDS,
	"I": SysIRNSS,
	"S": SysSBAS,
	"M": SysMIXED,
}

// SystemByAbbr returns the system for the abbreviation used in RINEX
// filenames and observation codes, e.g. GLONASS for "R".
func SystemByAbbr(abbr string) (System, bool) {
	sys, ok := sysPerAbbr[abbr]
	return sys, ok
}
