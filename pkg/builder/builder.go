package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
	"github.com/lintang-b-s/gps-heatmap/pkg/geo"
	"github.com/lintang-b-s/gps-heatmap/pkg/heatmap"
	"github.com/lintang-b-s/gps-heatmap/pkg/kvdb"
	"github.com/lintang-b-s/gps-heatmap/pkg/output"

	"go.uber.org/zap"
)

type TrackLoader interface {
	Load(ctx context.Context, dir string) ([]geo.SourcePath, error)
}

type PathCleaner interface {
	Clean(paths []datastructure.Path) ([]datastructure.Path, heatmap.Stats, error)
}

type TrackSink interface {
	SaveTracks(tracks []datastructure.Track) error
	PutMeta(meta kvdb.RunMeta) error
}

type Options struct {
	InputDir   string
	OutputFile string
	Format     output.Format
}

// Result summarises one build.
type Result struct {
	Tracks     int
	Files      int
	OutputFile string
	Stats      heatmap.Stats
}

// Builder runs a full build: parse every input file, clean the paths, write
// the output file and store the tracks for the API.
type Builder struct {
	log     *zap.Logger
	loader  TrackLoader
	cleaner PathCleaner
	sink    TrackSink
	opts    Options
	now     func() time.Time
}

func New(log *zap.Logger, loader TrackLoader, cleaner PathCleaner, sink TrackSink, opts Options) *Builder {
	return &Builder{
		log:     log,
		loader:  loader,
		cleaner: cleaner,
		sink:    sink,
		opts:    opts,
		now:     time.Now,
	}
}

func (b *Builder) Run(ctx context.Context) (Result, error) {
	sources, err := b.loader.Load(ctx, b.opts.InputDir)
	if err != nil {
		return Result{}, err
	}

	cleaned, stats, err := b.cleaner.Clean(heatmap.Paths(sources))
	if err != nil {
		return Result{}, fmt.Errorf("clean paths: %w", err)
	}

	tracks, ids, err := heatmap.BuildTracks(sources, cleaned)
	if err != nil {
		return Result{}, err
	}
	b.log.Debug("numbered tracks", zap.Int("ids", ids.Len()))

	if err := b.writeOutput(tracks); err != nil {
		return Result{}, err
	}

	files := countFiles(sources)
	if b.sink != nil {
		if err := b.sink.SaveTracks(tracks); err != nil {
			return Result{}, fmt.Errorf("store tracks: %w", err)
		}
		meta := kvdb.RunMeta{
			InputDir:  b.opts.InputDir,
			Files:     files,
			CreatedAt: b.now().Unix(),
			Stats:     stats,
		}
		if err := b.sink.PutMeta(meta); err != nil {
			return Result{}, fmt.Errorf("store run metadata: %w", err)
		}
	}

	b.log.Info("wrote output", zap.String("file", b.opts.OutputFile),
		zap.String("format", string(b.opts.Format)), zap.Int("tracks", len(tracks)))

	return Result{
		Tracks:     len(tracks),
		Files:      files,
		OutputFile: b.opts.OutputFile,
		Stats:      stats,
	}, nil
}

// writeOutput writes to a temporary file next to the target and renames it,
// so a failed build never leaves a truncated output behind.
func (b *Builder) writeOutput(tracks []datastructure.Track) error {
	dir := filepath.Dir(b.opts.OutputFile)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.opts.OutputFile)+".*")
	if err != nil {
		return fmt.Errorf("could not create output file %q: %w", b.opts.OutputFile, err)
	}
	defer os.Remove(tmp.Name())

	if err := output.WriteTracks(tmp, tracks, b.opts.Format); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write to output file %q: %w", b.opts.OutputFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write to output file %q: %w", b.opts.OutputFile, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), b.opts.OutputFile)
}

func countFiles(sources []geo.SourcePath) int {
	seen := make(map[string]struct{})
	for _, src := range sources {
		seen[src.Source] = struct{}{}
	}
	return len(seen)
}
