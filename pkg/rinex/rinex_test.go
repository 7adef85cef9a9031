package rinex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gnsslab/rnxcheck/pkg/gnss"
	"github.com/stretchr/testify/assert"
)

func TestParseDoy(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		year, doy int
		want      time.Time
	}{
		{2017, 1, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)},
		{2018, 339, time.Date(2018, 12, 5, 0, 0, 0, 0, time.UTC)},
		{2001, 365, time.Date(2001, 12, 31, 0, 0, 0, 0, time.UTC)},
		{2016, 366, time.Date(2016, 12, 31, 0, 0, 0, 0, time.UTC)},
		{2023, 366, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, // rolls over in a common year
	}
	for _, tc := range tests {
		assert.Equal(tc.want, ParseDoy(tc.year, tc.doy), "doy %d of %d", tc.doy, tc.year)
	}
}

func TestStartTime(t *testing.T) {
	assert := assert.New(t)

	st := StartTime{Year: 2019, Doy: 266, Hour: 4, Min: 15}
	assert.Equal("20192660415", st.String())
	assert.Equal(time.Date(2019, 9, 23, 4, 15, 0, 0, time.UTC), st.Time())

	st = StartTime{Year: 2023, Doy: 1}
	assert.Equal("20230010000", st.String())
}

func TestCodeStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R", SourceReceiver.String())
	assert.Equal("S", SourceStream.String())
	assert.Equal("01D", FilePeriod{Length: 1, Unit: PeriodDays}.String())
	assert.Equal("15M", FilePeriod{Length: 15, Unit: PeriodMinutes}.String())
	assert.Equal("00U", FilePeriod{Unit: PeriodUnspecified}.String())
	assert.Equal("30S", DataFreq{Length: 30, Unit: FreqSeconds}.String())
	assert.Equal("05Z", DataFreq{Length: 5, Unit: FreqHertz}.String())
	assert.Equal("rnx", FormatRnx.String())
	assert.Equal("gz", CompressionGzip.String())
	assert.Equal("", CompressionNone.String())
}

func TestDataType(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(KindObs, DataType("MO").Kind())
	assert.Equal(KindNav, DataType("MN").Kind())
	assert.Equal(KindNav, DataType("HN").Kind())
	assert.Equal(KindNav, DataType("ON").Kind())
	assert.Equal(KindMeteo, DataType("MM").Kind())
	assert.Equal("meteorological", KindMeteo.String())

	sys, ok := DataType("MO").System()
	assert.True(ok)
	assert.Equal(gnss.SysMIXED, sys)

	_, ok = DataType("HN").System()
	assert.False(ok, "H is no satellite system")
	_, ok = DataType("").System()
	assert.False(ok)
}

func TestMarshalText(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(struct {
		Source DataSource  `json:"source"`
		Start  StartTime   `json:"start"`
		Period FilePeriod  `json:"period"`
		Freq   DataFreq    `json:"freq"`
		Rule   Rule        `json:"rule"`
		Comp   Compression `json:"comp"`
	}{
		Source: SourceStream,
		Start:  StartTime{Year: 2018, Doy: 310, Hour: 19},
		Period: FilePeriod{Length: 1, Unit: PeriodHours},
		Freq:   DataFreq{Length: 30, Unit: FreqSeconds},
		Rule:   RuleCrossField,
		Comp:   CompressionGzip,
	})
	assert.NoError(err)
	assert.JSONEq(`{"source":"S","start":"20183101900","period":"01H","freq":"30S","rule":"cross-field","comp":"gz"}`, string(data))
}
