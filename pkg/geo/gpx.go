package geo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
)

// ParseGPX reads a GPS Exchange document and returns one path per <trkseg>
// that holds at least one usable <trkpt>. A trkpt whose lat or lon attribute
// is missing, unparseable or not finite is skipped.
func ParseGPX(r io.Reader) ([]datastructure.Path, error) {
	dec := xml.NewDecoder(r)

	var (
		paths   []datastructure.Path
		current []datastructure.Point
	)

	for {
		tkn, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding next XML token: %w", err)
		}

		switch elem := tkn.(type) {
		case xml.StartElement:
			if elem.Name.Local == "trkpt" {
				if pt, ok := trkptPoint(elem.Attr); ok {
					current = append(current, pt)
				}
			}
		case xml.EndElement:
			if elem.Name.Local == "trkseg" && len(current) > 0 {
				paths = append(paths, datastructure.NewPath(current))
				current = nil
			}
		}
	}

	return paths, nil
}

func trkptPoint(attrs []xml.Attr) (datastructure.Point, bool) {
	var (
		lat, lon       float64
		hasLat, hasLon bool
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "lat":
			lat, hasLat = parseCoordinate(attr.Value)
		case "lon":
			lon, hasLon = parseCoordinate(attr.Value)
		}
	}
	if !hasLat || !hasLon {
		return datastructure.Point{}, false
	}
	pt, err := datastructure.NewPoint(lat, lon)
	if err != nil {
		return datastructure.Point{}, false
	}
	return pt, true
}

func parseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
