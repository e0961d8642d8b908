package heatmap

import (
	"fmt"

	"github.com/lintang-b-s/gps-heatmap/pkg"
	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
	"github.com/lintang-b-s/gps-heatmap/pkg/geo"
)

// BuildTracks pairs every cleaned path with the source segment it came from
// and gives it a dense id in input order.
func BuildTracks(sources []geo.SourcePath, cleaned []datastructure.Path) ([]datastructure.Track, *pkg.IDMap, error) {
	if len(sources) != len(cleaned) {
		return nil, nil, fmt.Errorf("got %d cleaned paths for %d source segments", len(cleaned), len(sources))
	}

	idMap := pkg.NewIDMap()
	tracks := make([]datastructure.Track, 0, len(sources))
	for i, src := range sources {
		id := idMap.GetID(src.Key())
		tracks = append(tracks, datastructure.NewTrack(id, src.Source, src.Segment, cleaned[i]))
	}
	return tracks, idMap, nil
}

// Paths extracts the path of every source segment, keeping order.
func Paths(sources []geo.SourcePath) []datastructure.Path {
	paths := make([]datastructure.Path, len(sources))
	for i, src := range sources {
		paths[i] = src.Path
	}
	return paths
}
