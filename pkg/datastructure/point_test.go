package datastructure

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointEqualQuantized(t *testing.T) {
	tests := []struct {
		name  string
		a     Point
		b     Point
		equal bool
	}{
		{
			name:  "same micro degree",
			a:     Point{Lat: 0.5000001, Lon: 110.2500003},
			b:     Point{Lat: 0.5000004, Lon: 110.2500008},
			equal: true,
		},
		{
			name:  "different micro degree",
			a:     Point{Lat: 0.5000001, Lon: 110.25},
			b:     Point{Lat: 0.5000021, Lon: 110.25},
			equal: false,
		},
		{
			name:  "truncation goes toward zero",
			a:     Point{Lat: -0.0000005, Lon: 0.0000004},
			b:     Point{Lat: 0.0000005, Lon: -0.0000004},
			equal: true,
		},
		{
			name:  "negative values are not floored",
			a:     Point{Lat: -7.5000004, Lon: 1},
			b:     Point{Lat: -7.5000001, Lon: 1},
			equal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.a.Key() == tt.b.Key())
		})
	}
}

func TestPointKey(t *testing.T) {
	p := Point{Lat: -7.5680354, Lon: 110.8116912}
	assert.Equal(t, PointKey{Lat: -7568035, Lon: 110811691}, p.Key())

	// keys are usable as map keys for dedup
	seen := map[PointKey]int{}
	for _, q := range []Point{p, {Lat: -7.56803549, Lon: 110.81169125}, {Lat: 1, Lon: 1}} {
		seen[q.Key()]++
	}
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[p.Key()])
}

func TestPointArithmetic(t *testing.T) {
	a := Point{Lat: 1, Lon: 2}
	b := Point{Lat: 3, Lon: 6}

	assert.Equal(t, Point{Lat: 4, Lon: 8}, a.Add(b))
	assert.Equal(t, Point{Lat: -2, Lon: -4}, a.Sub(b))
	assert.Equal(t, Point{Lat: 1.5, Lon: 3}, b.Div(2))
	assert.Equal(t, 5.0, Point{}.Distance(Point{Lat: 3, Lon: 4}))
	assert.Equal(t, a.Distance(b), b.Distance(a))
}

func TestNewPoint(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		p, err := NewPoint(-7.55, 110.78)
		assert.NoError(t, err)
		assert.Equal(t, Point{Lat: -7.55, Lon: 110.78}, p)
	})

	t.Run("non finite", func(t *testing.T) {
		for _, c := range [][2]float64{
			{math.NaN(), 0},
			{0, math.Inf(1)},
			{math.Inf(-1), math.NaN()},
		} {
			_, err := NewPoint(c[0], c[1])
			if !errors.Is(err, ErrNonFiniteCoordinate) {
				t.Errorf("expected ErrNonFiniteCoordinate for %v, got %v", c, err)
			}
		}
	})
}

func TestPointRendering(t *testing.T) {
	p := Point{Lat: -7.25, Lon: 110.5}
	assert.Equal(t, "[-7.25, 110.5]", p.String())

	js, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.Equal(t, "[-7.25,110.5]", string(js))
}

func TestMean(t *testing.T) {
	_, ok := Mean(nil)
	assert.False(t, ok)

	m, ok := Mean([]Point{{Lat: 0, Lon: 0}, {Lat: 2, Lon: 4}, {Lat: 4, Lon: 8}})
	assert.True(t, ok)
	assert.Equal(t, Point{Lat: 2, Lon: 4}, m)
}
