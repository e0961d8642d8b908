package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"testing"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func samplePaths() []datastructure.Path {
	return []datastructure.Path{
		datastructure.NewPath([]datastructure.Point{{Lat: 46.5, Lon: 7.25}, {Lat: 46.75, Lon: 7.5}}),
		datastructure.NewPath([]datastructure.Point{{Lat: -7.5, Lon: 110.8}}),
	}
}

func TestWriteJS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePaths(), FormatJS))
	assert.Equal(t, "var paths = [\n  [[46.5,7.25],[46.75,7.5]],\n  [[-7.5,110.8]]\n];\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil, FormatJS))
	assert.Equal(t, "var paths = [];\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePaths(), FormatJSON))

	var got []struct {
		ID      int          `json:"id"`
		Segment int          `json:"segment"`
		Points  [][2]float64 `json:"points"`
		Bounds  struct {
			Min [2]float64 `json:"min"`
			Max [2]float64 `json:"max"`
		} `json:"bounds"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, [][2]float64{{46.5, 7.25}, {46.75, 7.5}}, got[0].Points)
	assert.Equal(t, 1, got[1].ID)
	assert.Equal(t, [2]float64{46.5, 7.25}, got[0].Bounds.Min)
	assert.Equal(t, [2]float64{46.75, 7.5}, got[0].Bounds.Max)
}

func TestWriteGeoJSON(t *testing.T) {
	tracks := []datastructure.Track{
		datastructure.NewTrack(0, "ride.gpx", 0, samplePaths()[0]),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTracks(&buf, tracks, FormatGeoJSON))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	ls, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{7.25, 46.5}, {7.5, 46.75}}, ls)
	assert.Equal(t, "ride.gpx", fc.Features[0].Properties.MustString("source"))
}

func TestWriteOSM(t *testing.T) {
	tracks := []datastructure.Track{
		datastructure.NewTrack(0, "ride.gpx", 0, samplePaths()[0]),
		datastructure.NewTrack(1, "", 0, samplePaths()[1]),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTracks(&buf, tracks, FormatOSM))

	o := &osm.OSM{}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), o))
	require.Len(t, o.Nodes, 3)
	require.Len(t, o.Ways, 2)

	assert.Equal(t, osm.WayID(-1), o.Ways[0].ID)
	assert.Equal(t, "ride.gpx", o.Ways[0].Tags.Find("source"))
	assert.Equal(t, "track", o.Ways[1].Tags.Find("highway"))
	require.Len(t, o.Ways[0].Nodes, 2)
	assert.Equal(t, osm.NodeID(-1), o.Ways[0].Nodes[0].ID)
	assert.Equal(t, osm.NodeID(-3), o.Ways[1].Nodes[0].ID)
	assert.Equal(t, 46.5, o.Nodes[0].Lat)
	assert.Equal(t, 7.25, o.Nodes[0].Lon)
}

func TestWriteMsgpack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePaths(), FormatMsgpack))

	var got []msgpackTrack
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, [][2]float64{{-7.5, 110.8}}, got[1].Points)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat(" GeoJSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatGeoJSON, got)
	assert.Equal(t, ".geojson", got.Ext())

	_, err = ParseFormat("kml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	err = Write(&bytes.Buffer{}, nil, Format("kml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
