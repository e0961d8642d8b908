package datastructure

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRadius = errors.New("radius must be a finite number >= 0")
)

// GridAddress identifies one square cell of side radius. Components are signed
// so that the neighbour at address-1 of cell 0 is simply a missing cell.
type GridAddress struct {
	Lat int64
	Lon int64
}

// GridIndex is a uniform-grid spatial hash over a fixed set of points.
//
// Cells are addressed by the absolute value of each coordinate, so points that
// mirror each other across the equator or the prime meridian share a cell.
// The distance filter in GetClose keeps such aliases out of the results, it
// only costs extra candidates. Tracks are expected to come from one region.
//
// A zero radius degenerates to exact matching on the quantized point key.
type GridIndex struct {
	radius  float64
	size    int
	buckets map[GridAddress][]Point
}

// NewGridIndex buckets every point by its address. The same radius is used
// for cell size and for the distance filter so that the 3x3 neighbourhood
// always covers the query disk.
func NewGridIndex(points []Point, radius float64) (*GridIndex, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}

	idx := &GridIndex{
		radius:  radius,
		size:    len(points),
		buckets: make(map[GridAddress][]Point),
	}
	for _, p := range points {
		addr := idx.Address(p)
		idx.buckets[addr] = append(idx.buckets[addr], p)
	}
	return idx, nil
}

// Address returns the cell of p: (floor(|lat|/radius), floor(|lon|/radius)).
func (idx *GridIndex) Address(p Point) GridAddress {
	if idx.radius == 0 {
		key := p.Key()
		return GridAddress{Lat: key.Lat, Lon: key.Lon}
	}
	return GridAddress{
		Lat: int64(math.Floor(math.Abs(p.Lat) / idx.radius)),
		Lon: int64(math.Floor(math.Abs(p.Lon) / idx.radius)),
	}
}

// GetClose returns every indexed point within radius of p, gathered from the
// 3x3 block of cells around p's cell.
func (idx *GridIndex) GetClose(p Point) []Point {
	addr := idx.Address(p)

	var candidates []Point
	for dLat := int64(-1); dLat <= 1; dLat++ {
		for dLon := int64(-1); dLon <= 1; dLon++ {
			candidates = append(candidates, idx.buckets[GridAddress{Lat: addr.Lat + dLat, Lon: addr.Lon + dLon}]...)
		}
	}

	nearby := make([]Point, 0, len(candidates))
	for _, c := range candidates {
		if idx.matches(p, c) {
			nearby = append(nearby, c)
		}
	}
	return nearby
}

func (idx *GridIndex) matches(query, candidate Point) bool {
	if idx.radius == 0 {
		return query.Equal(candidate)
	}
	return query.Distance(candidate) <= idx.radius
}

func (idx *GridIndex) Radius() float64 {
	return idx.radius
}

// Len is the number of indexed points.
func (idx *GridIndex) Len() int {
	return idx.size
}

func (idx *GridIndex) BucketCount() int {
	return len(idx.buckets)
}

// BucketSizes returns the number of points per non-empty cell.
func (idx *GridIndex) BucketSizes() map[GridAddress]int {
	sizes := make(map[GridAddress]int, len(idx.buckets))
	for addr, points := range idx.buckets {
		sizes[addr] = len(points)
	}
	return sizes
}
