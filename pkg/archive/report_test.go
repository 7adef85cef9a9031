package archive

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportResults() []Result {
	return []Result{
		CheckPath("igs/2023/001/BRUX00BEL_R_20230010000_01D_30S_MO.rnx"),
		CheckPath("igs/2023/001/AB120USA_R_20230010000_01D_30S_MO.rnx"),
		CheckPath("igs/2023/002/ABCD00XXX_R_20230010000_01D_30S_MO.rnx"),
	}
}

func TestWriteColumns(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := WriteColumns(&buf, reportResults())
	assert.NoError(err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !assert.Len(lines, 4) {
		return
	}
	assert.True(strings.HasPrefix(lines[0], "# Valid"))

	assert.Contains(lines[1], "yes")
	assert.Contains(lines[1], "ok")
	assert.Contains(lines[1], "2023/001")
	assert.Contains(lines[1], "BRUX00BEL_R_20230010000_01D_30S_MO.rnx")

	assert.Contains(lines[2], "no")
	assert.Contains(lines[2], "skipped")
	assert.Contains(lines[2], "site: structure")

	assert.Contains(lines[3], "mismatch")
	assert.Contains(lines[3], "warning: country code XXX")
}

func TestWriteCSV(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := WriteCSV(&buf, reportResults())
	assert.NoError(err)

	recs, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(err)
	if !assert.Len(recs, 4) {
		return
	}
	assert.Equal([]string{"path", "name", "valid", "location", "expected", "problems"}, recs[0])

	assert.Equal("igs/2023/001/BRUX00BEL_R_20230010000_01D_30S_MO.rnx", recs[1][0])
	assert.Equal("yes", recs[1][2])
	assert.Equal("ok", recs[1][3])
	assert.Equal("2023/001", recs[1][4])
	assert.Equal("", recs[1][5])

	assert.Equal("no", recs[2][2])
	assert.Equal("skipped", recs[2][3])
	assert.Equal("", recs[2][4], "no expected location for invalid names")
	assert.Contains(recs[2][5], "structure")

	assert.Equal("mismatch", recs[3][3])
	assert.Contains(recs[3][5], "warning")
}
