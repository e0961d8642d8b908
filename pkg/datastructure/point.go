package datastructure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// quantizeScale is 6 decimal places of a degree, roughly 0.11 m at the equator.
const quantizeScale = 1e6

var (
	ErrNonFiniteCoordinate = errors.New("coordinate is not a finite number")
)

// Point is a planar (lat, lon) coordinate. Values are copied, never mutated.
type Point struct {
	Lat float64
	Lon float64
}

// PointKey is the quantized identity of a Point.
type PointKey struct {
	Lat int64
	Lon int64
}

// NewPoint returns a Point, rejecting NaN and infinite coordinates.
func NewPoint(lat, lon float64) (Point, error) {
	if !isFinite(lat) || !isFinite(lon) {
		return Point{}, fmt.Errorf("%w: lat=%v lon=%v", ErrNonFiniteCoordinate, lat, lon)
	}
	return Point{Lat: lat, Lon: lon}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p Point) Add(other Point) Point {
	return Point{Lat: p.Lat + other.Lat, Lon: p.Lon + other.Lon}
}

func (p Point) Sub(other Point) Point {
	return Point{Lat: p.Lat - other.Lat, Lon: p.Lon - other.Lon}
}

func (p Point) Div(scalar float64) Point {
	return Point{Lat: p.Lat / scalar, Lon: p.Lon / scalar}
}

// Distance is Euclidean in degree space. No latitude correction is applied.
func (p Point) Distance(other Point) float64 {
	dLat := p.Lat - other.Lat
	dLon := p.Lon - other.Lon
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Key truncates both coordinates toward zero at 1e-6 degree.
func (p Point) Key() PointKey {
	return PointKey{
		Lat: int64(p.Lat * quantizeScale),
		Lon: int64(p.Lon * quantizeScale),
	}
}

// Equal reports whether both points share the same quantized key.
func (p Point) Equal(other Point) bool {
	return p.Key() == other.Key()
}

func (p Point) String() string {
	return fmt.Sprintf("[%s, %s]", formatFloat(p.Lat), formatFloat(p.Lon))
}

// MarshalJSON renders the point as a [lat,lon] pair.
func (p Point) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 48)
	buf = append(buf, '[')
	buf = strconv.AppendFloat(buf, p.Lat, 'f', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, p.Lon, 'f', -1, 64)
	buf = append(buf, ']')
	return buf, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Mean returns the arithmetic mean of points. ok is false for an empty slice.
func Mean(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	sum := Point{}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(points))), true
}
