package output

import (
	"bufio"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/vmihailenco/msgpack/v5"
)

type Format string

const (
	FormatJS      Format = "js"
	FormatJSON    Format = "json"
	FormatGeoJSON Format = "geojson"
	FormatOSM     Format = "osm"
	FormatMsgpack Format = "msgpack"
)

const generator = "gps-heatmap"

var (
	ErrUnknownFormat = errors.New("unknown output format")
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatJS, FormatJSON, FormatGeoJSON, FormatOSM, FormatMsgpack}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext is the usual file extension of the format.
func (f Format) Ext() string {
	switch f {
	case FormatGeoJSON:
		return ".geojson"
	case FormatOSM:
		return ".osm"
	case FormatMsgpack:
		return ".msgpack"
	case FormatJSON:
		return ".json"
	default:
		return ".js"
	}
}

// Write renders bare paths. Tracks get sequential ids and no source.
func Write(w io.Writer, paths []datastructure.Path, format Format) error {
	tracks := make([]datastructure.Track, len(paths))
	for i, p := range paths {
		tracks[i] = datastructure.NewTrack(i, "", i, p)
	}
	return WriteTracks(w, tracks, format)
}

func WriteTracks(w io.Writer, tracks []datastructure.Track, format Format) error {
	bw := bufio.NewWriter(w)
	var err error
	switch format {
	case FormatJS:
		err = writeJS(bw, tracks)
	case FormatJSON:
		err = writeJSON(bw, tracks)
	case FormatGeoJSON:
		err = writeGeoJSON(bw, tracks)
	case FormatOSM:
		err = writeOSM(bw, tracks)
	case FormatMsgpack:
		err = writeMsgpack(bw, tracks)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

// writeJS renders the viewer input, a global array of [lat,lon] polylines:
//
//	var paths = [
//	  [[46.1,7.2],[46.2,7.3]],
//	  [[-7.5,110.8]]
//	];
func writeJS(w *bufio.Writer, tracks []datastructure.Track) error {
	if _, err := w.WriteString("var paths = ["); err != nil {
		return err
	}
	for i, track := range tracks {
		sep := "\n  "
		if i > 0 {
			sep = ",\n  "
		}
		js, err := track.Path.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.WriteString(sep); err != nil {
			return err
		}
		if _, err := w.Write(js); err != nil {
			return err
		}
	}
	if len(tracks) > 0 {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	_, err := w.WriteString("];\n")
	return err
}

type jsonTrack struct {
	datastructure.Track
	Points datastructure.Path `json:"points"`
}

func writeJSON(w *bufio.Writer, tracks []datastructure.Track) error {
	out := make([]jsonTrack, len(tracks))
	for i, track := range tracks {
		out[i] = jsonTrack{Track: track, Points: track.Path}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

// writeGeoJSON renders one LineString feature per track. GeoJSON positions
// are [lon, lat].
func writeGeoJSON(w *bufio.Writer, tracks []datastructure.Track) error {
	fc := geojson.NewFeatureCollection()
	for _, track := range tracks {
		ls := make(orb.LineString, 0, track.Path.Len())
		for _, p := range track.Path.Points {
			ls = append(ls, orb.Point{p.Lon, p.Lat})
		}
		f := geojson.NewFeature(ls)
		f.ID = track.ID
		f.Properties["id"] = track.ID
		f.Properties["segment"] = track.Segment
		if track.Source != "" {
			f.Properties["source"] = track.Source
		}
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// writeOSM renders every track as a way over fresh nodes. New objects carry
// negative ids as the OSM editors expect for data that was never uploaded.
func writeOSM(w *bufio.Writer, tracks []datastructure.Track) error {
	o := &osm.OSM{
		Version:   "0.6",
		Generator: generator,
	}

	nodeID := osm.NodeID(0)
	for _, track := range tracks {
		way := &osm.Way{
			ID:      osm.WayID(-(track.ID + 1)),
			Visible: true,
			Tags:    osm.Tags{{Key: "highway", Value: "track"}},
		}
		if track.Source != "" {
			way.Tags = append(way.Tags, osm.Tag{Key: "source", Value: track.Source})
		}
		for _, p := range track.Path.Points {
			nodeID--
			o.Nodes = append(o.Nodes, &osm.Node{
				ID:      nodeID,
				Lat:     p.Lat,
				Lon:     p.Lon,
				Visible: true,
			})
			way.Nodes = append(way.Nodes, osm.WayNode{ID: nodeID})
		}
		o.Ways = append(o.Ways, way)
	}

	if _, err := w.WriteString(xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(o); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

type msgpackTrack struct {
	ID      int          `msgpack:"id"`
	Source  string       `msgpack:"source"`
	Segment int          `msgpack:"segment"`
	Points  [][2]float64 `msgpack:"points"`
}

func writeMsgpack(w *bufio.Writer, tracks []datastructure.Track) error {
	out := make([]msgpackTrack, len(tracks))
	for i, track := range tracks {
		points := make([][2]float64, len(track.Path.Points))
		for j, p := range track.Path.Points {
			points[j] = [2]float64{p.Lat, p.Lon}
		}
		out[i] = msgpackTrack{ID: track.ID, Source: track.Source, Segment: track.Segment, Points: points}
	}
	return msgpack.NewEncoder(w).Encode(out)
}
