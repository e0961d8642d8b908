package heatmap

import (
	"fmt"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"go.uber.org/zap"
)

// DefaultRadius is the clustering radius in degrees, about 39 m at the equator.
const DefaultRadius = 0.00035

// Clean smooths every path, builds one consensus index from all smoothed
// points and then pulls each ORIGINAL path toward that consensus. The index is
// complete before the first Combine call.
func Clean(paths []datastructure.Path, radius float64) ([]datastructure.Path, error) {
	clean, _, err := clean(paths, radius)
	return clean, err
}

func clean(paths []datastructure.Path, radius float64) ([]datastructure.Path, *datastructure.GridIndex, error) {
	smoothed := make([]datastructure.Path, len(paths))
	total := 0
	for i, p := range paths {
		smoothed[i] = p.Smooth()
		total += smoothed[i].Len()
	}

	allPoints := make([]datastructure.Point, 0, total)
	for _, s := range smoothed {
		allPoints = append(allPoints, s.Points...)
	}
	idx, err := datastructure.NewGridIndex(allPoints, radius)
	if err != nil {
		return nil, nil, err
	}

	cleaned := make([]datastructure.Path, len(paths))
	for i, p := range paths {
		cleaned[i], err = p.Combine(idx)
		if err != nil {
			return nil, nil, fmt.Errorf("combining path %d: %w", i, err)
		}
	}
	return cleaned, idx, nil
}

// Cleaner runs Clean and reports what it did.
type Cleaner struct {
	log    *zap.Logger
	radius float64
}

func NewCleaner(log *zap.Logger, radius float64) *Cleaner {
	return &Cleaner{log: log, radius: radius}
}

func (c *Cleaner) Radius() float64 {
	return c.radius
}

func (c *Cleaner) Clean(paths []datastructure.Path) ([]datastructure.Path, Stats, error) {
	c.log.Info("smoothing and cleaning paths",
		zap.Int("paths", len(paths)),
		zap.Float64("radius", c.radius),
		zap.Float64("radius_m", datastructure.DegreesToMeters(c.radius)))

	cleaned, idx, err := clean(paths, c.radius)
	if err != nil {
		return nil, Stats{}, err
	}

	stats := NewStats(paths, cleaned, idx)
	c.log.Info("cleaned paths",
		zap.Int("points", stats.Points),
		zap.Int("buckets", stats.Buckets),
		zap.Int("max_bucket_size", stats.MaxBucketSize),
		zap.Float64("raw_length_km", stats.RawLengthKM),
		zap.Float64("clean_length_km", stats.CleanLengthKM))
	return cleaned, stats, nil
}
