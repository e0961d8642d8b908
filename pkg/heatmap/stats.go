package heatmap

import (
	"sort"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"golang.org/x/exp/maps"
)

// Stats summarises one cleaning run.
type Stats struct {
	Paths         int     `json:"paths" msgpack:"paths"`
	Points        int     `json:"points" msgpack:"points"`
	Radius        float64 `json:"radius" msgpack:"radius"`
	Buckets       int     `json:"buckets" msgpack:"buckets"`
	MaxBucketSize int     `json:"max_bucket_size" msgpack:"max_bucket_size"`
	// median number of points per non-empty cell
	MedianBucketSize int     `json:"median_bucket_size" msgpack:"median_bucket_size"`
	RawLengthKM      float64 `json:"raw_length_km" msgpack:"raw_length_km"`
	CleanLengthKM    float64 `json:"clean_length_km" msgpack:"clean_length_km"`
}

func NewStats(raw, cleaned []datastructure.Path, idx *datastructure.GridIndex) Stats {
	stats := Stats{
		Paths:   len(raw),
		Points:  idx.Len(),
		Radius:  idx.Radius(),
		Buckets: idx.BucketCount(),
	}

	sizes := maps.Values(idx.BucketSizes())
	if len(sizes) > 0 {
		sort.Ints(sizes)
		stats.MaxBucketSize = sizes[len(sizes)-1]
		stats.MedianBucketSize = sizes[len(sizes)/2]
	}

	for _, p := range raw {
		stats.RawLengthKM += p.LengthKM()
	}
	for _, p := range cleaned {
		stats.CleanLengthKM += p.LengthKM()
	}
	return stats
}
