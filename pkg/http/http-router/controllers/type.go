package controllers

import (
	"io"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
	"github.com/lintang-b-s/gps-heatmap/pkg/kvdb"
)

type TracksService interface {
	ListTracks(bbox *datastructure.BoundingBox) ([]datastructure.Track, error)
	GetTrack(id int) (datastructure.Track, error)
	GetMeta() (kvdb.RunMeta, error)
	WriteViewerData(w io.Writer) error
}
