// Package engine owns the single audio output sink and every change made to it.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gigurra/tunes/cmd/player/catalog"
	"github.com/gopxl/beep/v2"
	"github.com/samber/lo"
)

// Opener resolves a source locator to a decoded stream.
type Opener interface {
	Open(path string) (beep.StreamSeekCloser, beep.Format, error)
}

// Sink is an audio output that plays appended streams back-to-back.
type Sink interface {
	Append(stream beep.StreamSeekCloser, format beep.Format)
	Clear()
	SetPaused(paused bool)
	SetVolume(v float64)
	Pending() int
}

// Engine drives one Sink. It is not safe for concurrent use; the event loop owns it.
type Engine struct {
	sink   Sink
	opener Opener
	volume float64
	paused bool
}

// New creates an engine around sink with the given starting volume.
func New(sink Sink, opener Opener, volume float64) *Engine {
	e := &Engine{
		sink:   sink,
		opener: opener,
		volume: clampVolume(volume),
	}
	sink.SetVolume(e.volume)
	return e
}

// Enqueue decodes track and appends it to the sink.
func (e *Engine) Enqueue(track catalog.Track) error {
	stream, format, err := e.opener.Open(track.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", track.Name, err)
	}
	e.sink.Append(stream, format)
	slog.Debug("enqueued track", "name", track.Name, "path", track.Path)
	return nil
}

// ReplaceAndPlay discards everything pending and starts playing tracks in order.
// Tracks that cannot be decoded are skipped; the returned slice holds the ones
// that were submitted, and the error joins one entry per skipped track.
func (e *Engine) ReplaceAndPlay(tracks []catalog.Track) ([]catalog.Track, error) {
	e.Stop()

	var played []catalog.Track
	var errs []error
	for _, track := range tracks {
		if err := e.Enqueue(track); err != nil {
			slog.Warn("skipping track", "name", track.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		played = append(played, track)
	}

	slog.Info("playback started", "tracks", lo.Map(played, func(t catalog.Track, _ int) string { return t.Name }))
	return played, errors.Join(errs...)
}

// TogglePause resumes when paused and pauses otherwise.
func (e *Engine) TogglePause() {
	e.setPaused(!e.paused)
}

// AdjustVolume moves the volume by delta, clamped to [0, 1], and returns the new value.
func (e *Engine) AdjustVolume(delta float64) float64 {
	e.volume = clampVolume(e.volume + delta)
	e.sink.SetVolume(e.volume)
	return e.volume
}

// Stop halts playback and drops all pending audio. A stopped engine is never paused.
func (e *Engine) Stop() {
	e.sink.Clear()
	e.setPaused(false)
}

func (e *Engine) Volume() float64 {
	return e.volume
}

func (e *Engine) Paused() bool {
	return e.paused
}

func (e *Engine) State() State {
	switch {
	case e.sink.Pending() == 0:
		return StateStopped
	case e.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

func (e *Engine) setPaused(paused bool) {
	e.paused = paused
	e.sink.SetPaused(paused)
}

// clampVolume snaps v to a 0.001 grid so repeated 0.1 steps stay exact, then clamps.
func clampVolume(v float64) float64 {
	return lo.Clamp(math.Round(v*1000)/1000, 0, 1)
}
