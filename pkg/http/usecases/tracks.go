package usecases

import (
	"errors"
	"io"

	"github.com/lintang-b-s/gps-heatmap/pkg"
	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
	"github.com/lintang-b-s/gps-heatmap/pkg/kvdb"
	"github.com/lintang-b-s/gps-heatmap/pkg/metrics"
	"github.com/lintang-b-s/gps-heatmap/pkg/output"

	"go.uber.org/zap"
)

type TracksService struct {
	log   *zap.Logger
	store TrackStore
}

func New(log *zap.Logger, store TrackStore) *TracksService {
	return &TracksService{
		log:   log,
		store: store,
	}
}

// ListTracks returns the stored tracks, only those whose bounds intersect
// bbox when bbox is not nil.
func (s *TracksService) ListTracks(bbox *datastructure.BoundingBox) ([]datastructure.Track, error) {
	tracks, err := s.store.ListTracks()
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list tracks")
	}
	metrics.TracksServed.Add(float64(len(tracks)))
	if bbox == nil {
		return tracks, nil
	}

	filtered := make([]datastructure.Track, 0, len(tracks))
	for _, track := range tracks {
		if track.Bounds.Intersects(*bbox) {
			filtered = append(filtered, track)
		}
	}
	return filtered, nil
}

func (s *TracksService) GetTrack(id int) (datastructure.Track, error) {
	track, err := s.store.GetTrack(id)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return track, pkg.WrapErrorf(err, pkg.ErrNotFound, "track %d not found", id)
	}
	if err != nil {
		return track, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "get track %d", id)
	}
	metrics.TracksServed.Inc()
	return track, nil
}

func (s *TracksService) GetMeta() (kvdb.RunMeta, error) {
	meta, err := s.store.GetMeta()
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return meta, pkg.WrapErrorf(err, pkg.ErrNotFound, "no build has been stored yet")
	}
	if err != nil {
		return meta, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "get run metadata")
	}
	return meta, nil
}

// WriteViewerData renders every stored track in the js format read by the
// map viewer.
func (s *TracksService) WriteViewerData(w io.Writer) error {
	tracks, err := s.ListTracks(nil)
	if err != nil {
		return err
	}
	s.log.Debug("rendering viewer data", zap.Int("tracks", len(tracks)))
	return output.WriteTracks(w, tracks, output.FormatJS)
}
