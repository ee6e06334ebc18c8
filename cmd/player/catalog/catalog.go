// Package catalog holds the read-only list of tracks found in the library directory.
package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gigurra/tunes/cmd/player/audio"
	"github.com/samber/lo"
)

// ErrIO is returned when the library directory cannot be read.
var ErrIO = audio.ErrIO

// Track is a single playable file. Its identity is its index in the Catalog.
type Track struct {
	Name          string        // Display name (file name without extension)
	Path          string        // Source locator
	Duration      time.Duration // Play length, valid only when DurationKnown
	DurationKnown bool
}

// FormatDuration renders the duration in seconds with an "s" suffix, or "?" when unknown.
func (t Track) FormatDuration() string {
	if !t.DurationKnown {
		return "?"
	}
	return fmt.Sprintf("%.1fs", t.Duration.Seconds())
}

// Prober reports the play length of a file.
type Prober interface {
	Probe(path string) (length time.Duration, known bool, err error)
}

// Catalog is built once by Load and never changes afterwards.
type Catalog struct {
	Dir     string
	tracks  []Track
	Skipped []error // Supported files that could not be decoded
}

// New builds a catalog from tracks that are already known.
func New(tracks ...Track) *Catalog {
	return &Catalog{tracks: append([]Track(nil), tracks...)}
}

// Load scans dir (non-recursively) for supported audio files.
// Files that fail to decode are skipped and recorded in Skipped; only an
// unreadable directory fails the whole load.
func Load(dir string, probe Prober) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return audio.Supported(e.Name()) && isRegular(dir, e)
	})

	cat := &Catalog{Dir: dir, tracks: make([]Track, 0, len(files))}
	for _, entry := range files {
		path := filepath.Join(dir, entry.Name())
		length, known, err := probe.Probe(path)
		if err != nil {
			slog.Warn("skipping unreadable track", "path", path, "error", err)
			cat.Skipped = append(cat.Skipped, err)
			continue
		}
		cat.tracks = append(cat.tracks, Track{
			Name:          strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Path:          path,
			Duration:      length,
			DurationKnown: known,
		})
	}

	slog.Info("catalog loaded", "dir", dir, "tracks", len(cat.tracks), "skipped", len(cat.Skipped))
	return cat, nil
}

// isRegular reports whether e is a regular file, following symlinks.
// Opening a FIFO or device would block the scan.
func isRegular(dir string, e os.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}

func (c *Catalog) Len() int {
	return len(c.tracks)
}

// At returns the track at index i.
func (c *Catalog) At(i int) (Track, bool) {
	if i < 0 || i >= len(c.tracks) {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Tracks returns a copy of all tracks in catalog order.
func (c *Catalog) Tracks() []Track {
	return append([]Track(nil), c.tracks...)
}

// TotalDuration sums the known durations.
func (c *Catalog) TotalDuration() time.Duration {
	return lo.SumBy(c.tracks, func(t Track) time.Duration {
		if !t.DurationKnown {
			return 0
		}
		return t.Duration
	})
}
