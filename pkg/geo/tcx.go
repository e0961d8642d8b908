package geo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
)

// ParseTCX reads a Training Center XML document and returns one path per
// <Track> with at least one position. A <Trackpoint> becomes a point only when
// both <LatitudeDegrees> and <LongitudeDegrees> parsed; trackpoints without a
// position (pauses, heart-rate only samples) are skipped.
func ParseTCX(r io.Reader) ([]datastructure.Path, error) {
	dec := xml.NewDecoder(r)

	var (
		paths          []datastructure.Path
		current        []datastructure.Point
		lat, lon       float64
		hasLat, hasLon bool
		inLat, inLon   bool
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
			switch elem.Name.Local {
			case "LatitudeDegrees":
				inLat = true
			case "LongitudeDegrees":
				inLon = true
			}
		case xml.CharData:
			if inLat {
				lat, hasLat = parseCoordinate(string(elem))
			} else if inLon {
				lon, hasLon = parseCoordinate(string(elem))
			}
		case xml.EndElement:
			switch elem.Name.Local {
			case "LatitudeDegrees":
				inLat = false
			case "LongitudeDegrees":
				inLon = false
			case "Trackpoint":
				if hasLat && hasLon {
					if pt, err := datastructure.NewPoint(lat, lon); err == nil {
						current = append(current, pt)
					}
				}
				hasLat, hasLon = false, false
			case "Track":
				if len(current) > 0 {
					paths = append(paths, datastructure.NewPath(current))
					current = nil
				}
			}
		}
	}

	return paths, nil
}
