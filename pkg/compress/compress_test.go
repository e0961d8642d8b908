package compress

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigzag(t *testing.T) {
	tests := []struct {
		in  int64
		out uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, zigzag(tt.in))
		assert.Equal(t, tt.in, unzigzag(tt.out))
	}
}

func TestEncodeDecodePath(t *testing.T) {
	tests := []struct {
		name   string
		points []datastructure.Point
	}{
		{"empty", nil},
		{"single", []datastructure.Point{{Lat: -7.5680354, Lon: 110.8116912}}},
		{"track", []datastructure.Point{
			{Lat: 46.1037147, Lon: 7.2288009},
			{Lat: 46.1036120, Lon: 7.2287001},
			{Lat: 46.1034000, Lon: 7.2284000},
			{Lat: -46.1034000, Lon: -179.9999999},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodePath(EncodePath(datastructure.NewPath(tt.points)))
			require.NoError(t, err)
			require.Equal(t, len(tt.points), decoded.Len())
			for i, p := range tt.points {
				assert.InDelta(t, p.Lat, decoded.Points[i].Lat, 1e-9)
				assert.InDelta(t, p.Lon, decoded.Points[i].Lon, 1e-9)
			}
		})
	}
}

func TestEncodePathIsCompact(t *testing.T) {
	points := make([]datastructure.Point, 0, 100)
	for i := 0; i < 100; i++ {
		points = append(points, datastructure.Point{Lat: -7.56 + float64(i)*0.00001, Lon: 110.81})
	}
	encoded := EncodePath(datastructure.NewPath(points))
	// first point is absolute, the rest are small deltas
	assert.Less(t, len(encoded), 100*4)
}

func TestDecodePathCorrupt(t *testing.T) {
	encoded := EncodePath(datastructure.NewPath([]datastructure.Point{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}))

	_, err := DecodePath(nil)
	assert.True(t, errors.Is(err, ErrCorruptCoordinates))

	_, err = DecodePath(encoded[:len(encoded)-1])
	assert.True(t, errors.Is(err, ErrCorruptCoordinates))

	_, err = DecodePath(append(encoded, 0))
	assert.True(t, errors.Is(err, ErrCorruptCoordinates))
}
