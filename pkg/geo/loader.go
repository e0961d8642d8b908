package geo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lintang-b-s/gps-heatmap/pkg/concurrent"
	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var (
	ErrNoTracks = errors.New("no track segments found")
)

// SourcePath is a parsed segment together with where it came from.
type SourcePath struct {
	Source  string
	Segment int
	Path    datastructure.Path
}

// Key is a stable identifier for the segment, "<file>#<segment>".
func (sp SourcePath) Key() string {
	return fmt.Sprintf("%s#%d", sp.Source, sp.Segment)
}

// Discover lists the regular, non-hidden files directly inside dir, sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %q: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

type Loader struct {
	log      *zap.Logger
	workers  int
	progress bool
}

func NewLoader(log *zap.Logger, workers int, progress bool) *Loader {
	return &Loader{log: log, workers: workers, progress: progress}
}

type parseJob struct {
	idx      int
	filename string
}

type parseResult struct {
	idx      int
	filename string
	paths    []datastructure.Path
	err      error
}

// Load parses every file in dir. Files that cannot be read or parsed are
// skipped with a warning; the segments of the remaining files are returned in
// file-name order, segments of one file in document order.
func (l *Loader) Load(ctx context.Context, dir string) ([]SourcePath, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if l.progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan][1/3]Parsing track files..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	worker := concurrent.NewBackgroundWorker(l.workers, len(files), func(job parseJob) parseResult {
		if err := ctx.Err(); err != nil {
			return parseResult{idx: job.idx, filename: job.filename, err: err}
		}
		paths, err := ParseFile(job.filename)
		return parseResult{idx: job.idx, filename: job.filename, paths: paths, err: err}
	})
	worker.Start()

	go func() {
		for i, f := range files {
			worker.TriggerProcessing(parseJob{idx: i, filename: f})
		}
		worker.Close()
	}()

	results := make([]parseResult, len(files))
	for res := range worker.Results() {
		results[res.idx] = res
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sourcePaths []SourcePath
	for _, res := range results {
		name := filepath.Base(res.filename)
		if res.err != nil {
			l.log.Warn("skipped file", zap.String("file", res.filename), zap.Error(res.err))
			continue
		}
		l.log.Info("added file", zap.String("file", res.filename), zap.Int("segments", len(res.paths)))
		for seg, p := range res.paths {
			sourcePaths = append(sourcePaths, SourcePath{Source: name, Segment: seg, Path: p})
		}
	}

	if len(sourcePaths) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTracks, dir)
	}
	return sourcePaths, nil
}
