package usecases

import (
	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
	"github.com/lintang-b-s/gps-heatmap/pkg/kvdb"
)

type TrackStore interface {
	ListTracks() ([]datastructure.Track, error)
	GetTrack(id int) (datastructure.Track, error)
	GetMeta() (kvdb.RunMeta, error)
}
