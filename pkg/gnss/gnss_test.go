package gnss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemByAbbr(t *testing.T) {
	sys, ok := SystemByAbbr("R")
	assert.True(t, ok)
	assert.Equal(t, SysGLO, sys)
	assert.Equal(t, "GLO", sys.String())

	sys, ok = SystemByAbbr("M")
	assert.True(t, ok)
	assert.Equal(t, SysMIXED, sys)

	_, ok = SystemByAbbr("X")
	assert.False(t, ok, "X is no satellite system")
}

func TestSystem_Abbr(t *testing.T) {
	assert.Equal(t, "G", SysGPS.Abbr())
	assert.Equal(t, "C", SysBDS.Abbr())
	assert.Equal(t, "M", SysMIXED.Abbr())
}
