package datastructure

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyNeighbourhood = errors.New("no indexed point within radius")
)

// NearbyIndex answers radius queries against the consensus points of every track.
type NearbyIndex interface {
	GetClose(p Point) []Point
	Radius() float64
}

// Path is one continuous track segment, in recording order.
type Path struct {
	Points []Point
}

func NewPath(points []Point) Path {
	return Path{Points: points}
}

func (p Path) Len() int {
	return len(p.Points)
}

// Smooth returns a copy where every interior point is the mean of itself and
// its two neighbours. The first and last points are kept as they are.
// A single-point path yields a single-point path.
func (p Path) Smooth() Path {
	n := len(p.Points)
	smoothed := make([]Point, 0, n)
	if n == 0 {
		return NewPath(smoothed)
	}

	smoothed = append(smoothed, p.Points[0])
	for i := 1; i < n-1; i++ {
		prev, cur, next := p.Points[i-1], p.Points[i], p.Points[i+1]
		smoothed = append(smoothed, prev.Add(cur).Add(next).Div(3.0))
	}
	if n > 1 {
		smoothed = append(smoothed, p.Points[n-1])
	}

	return NewPath(smoothed)
}

// Combine pulls every point of p toward the mean of its indexed neighbours.
// The output has the same length and order as p.
func (p Path) Combine(idx NearbyIndex) (Path, error) {
	combined := make([]Point, 0, len(p.Points))
	for i, point := range p.Points {
		nearby := idx.GetClose(point)
		average, ok := Mean(nearby)
		if !ok {
			return Path{}, fmt.Errorf("%w: point %d %s, radius %v", ErrEmptyNeighbourhood, i, point, idx.Radius())
		}
		combined = append(combined, average)
	}
	return NewPath(combined), nil
}

// Bounds returns the bounding box of the path. ok is false for an empty path.
func (p Path) Bounds() (BoundingBox, bool) {
	if len(p.Points) == 0 {
		return BoundingBox{}, false
	}
	bb := NewBoundingBox(p.Points[0], p.Points[0])
	for _, point := range p.Points[1:] {
		bb = bb.Extend(point)
	}
	return bb, true
}
