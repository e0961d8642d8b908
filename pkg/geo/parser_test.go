package geo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <metadata><time>2023-04-01T17:16:10Z</time></metadata>
  <trk>
    <name>Morning Ride</name>
    <trkseg>
      <trkpt lat="46.1037147" lon="7.2288009"><ele>821.0</ele></trkpt>
      <trkpt lat="46.1036120" lon="7.2287001"/>
      <trkpt lat="not-a-number" lon="7.2286000"/>
      <trkpt lon="7.2285000"/>
      <trkpt lat="NaN" lon="7.2285000"/>
      <trkpt lat=" 46.1034000 " lon="7.2284000"/>
    </trkseg>
    <trkseg>
    </trkseg>
    <trkseg>
      <trkpt lat="-7.5577436" lon="110.7812727"/>
    </trkseg>
  </trk>
</gpx>`

const sampleTCX = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">
  <Activities>
    <Activity Sport="Running">
      <Lap>
        <Track>
          <Trackpoint>
            <Time>2021-05-01T07:00:00Z</Time>
            <Position>
              <LatitudeDegrees>-7.5680354</LatitudeDegrees>
              <LongitudeDegrees>110.8116912</LongitudeDegrees>
            </Position>
          </Trackpoint>
          <Trackpoint>
            <Time>2021-05-01T07:00:01Z</Time>
            <HeartRateBpm><Value>120</Value></HeartRateBpm>
          </Trackpoint>
          <Trackpoint>
            <Position>
              <LatitudeDegrees>-7.5681000</LatitudeDegrees>
            </Position>
          </Trackpoint>
          <Trackpoint>
            <Position>
              <LongitudeDegrees>110.8118000</LongitudeDegrees>
            </Position>
          </Trackpoint>
          <Trackpoint>
            <Position>
              <LatitudeDegrees>-7.5682000</LatitudeDegrees>
              <LongitudeDegrees>110.8119000</LongitudeDegrees>
            </Position>
          </Trackpoint>
        </Track>
        <Track></Track>
      </Lap>
      <Lap>
        <Track>
          <Trackpoint>
            <Position>
              <LatitudeDegrees>bad</LatitudeDegrees>
              <LongitudeDegrees>110.8</LongitudeDegrees>
            </Position>
          </Trackpoint>
        </Track>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

func TestParseGPX(t *testing.T) {
	paths, err := ParseGPX(strings.NewReader(sampleGPX))
	require.NoError(t, err)
	require.Len(t, paths, 2, "empty trkseg must be dropped")

	assert.Equal(t, []datastructure.Point{
		{Lat: 46.1037147, Lon: 7.2288009},
		{Lat: 46.1036120, Lon: 7.2287001},
		{Lat: 46.1034000, Lon: 7.2284000},
	}, paths[0].Points)
	assert.Equal(t, []datastructure.Point{{Lat: -7.5577436, Lon: 110.7812727}}, paths[1].Points)
}

func TestParseGPXMalformed(t *testing.T) {
	_, err := ParseGPX(strings.NewReader(`<gpx><trk><trkseg><trkpt lat="1" lon="2"></trkseg></gpx>`))
	assert.Error(t, err)
}

func TestParseTCX(t *testing.T) {
	paths, err := ParseTCX(strings.NewReader(sampleTCX))
	require.NoError(t, err)
	require.Len(t, paths, 1)

	assert.Equal(t, []datastructure.Point{
		{Lat: -7.5680354, Lon: 110.8116912},
		{Lat: -7.5682000, Lon: 110.8119000},
	}, paths[0].Points)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		filename string
		ext      string
		gz       bool
		err      error
	}{
		{"ride.gpx", ".gpx", false, nil},
		{"/data/RUN.TCX", ".tcx", false, nil},
		{"ride.gpx.gz", ".gpx", true, nil},
		{"ride.Tcx.GZ", ".tcx", true, nil},
		{"notes.txt", "", false, ErrUnsupportedFormat},
		{"archive.gz", "", false, ErrUnsupportedFormat},
		{"gpx", "", false, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			ext, gz, err := Format(tt.filename)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				assert.False(t, Supported(tt.filename))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.gz, gz)
			assert.True(t, Supported(tt.filename))
		})
	}
}

func TestParseGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleGPX))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	paths, err := Parse("ride.gpx.gz", &buf)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	_, err = Parse("ride.gpx.gz", strings.NewReader(sampleGPX))
	assert.Error(t, err, "plain text is not a gzip stream")
}
