package geo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"

	"github.com/klauspost/compress/gzip"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported track format")
)

// ParseFunc turns one track document into its segments.
type ParseFunc func(r io.Reader) ([]datastructure.Path, error)

var parsers = map[string]ParseFunc{
	".gpx": ParseGPX,
	".tcx": ParseTCX,
}

const gzipExt = ".gz"

// Format returns the track extension of filename and whether it is gzipped,
// e.g. "ride.GPX.gz" -> (".gpx", true).
func Format(filename string) (string, bool, error) {
	name := strings.ToLower(filepath.Base(filename))
	gz := strings.HasSuffix(name, gzipExt)
	if gz {
		name = strings.TrimSuffix(name, gzipExt)
	}
	ext := filepath.Ext(name)
	if _, ok := parsers[ext]; !ok {
		return "", false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(filename))
	}
	return ext, gz, nil
}

// Supported reports whether filename has a parseable extension.
func Supported(filename string) bool {
	_, _, err := Format(filename)
	return err == nil
}

// Parse decodes r according to the format of filename.
func Parse(filename string, r io.Reader) ([]datastructure.Path, error) {
	ext, gz, err := Format(filename)
	if err != nil {
		return nil, err
	}
	if gz {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return parsers[ext](r)
}

// ParseFile opens and parses one track file.
func ParseFile(filename string) ([]datastructure.Path, error) {
	if _, _, err := Format(filename); err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filename, err)
	}
	defer f.Close()

	return Parse(filename, f)
}
