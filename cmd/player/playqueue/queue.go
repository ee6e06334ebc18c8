// Package playqueue keeps the user's ordered list of tracks to play.
package playqueue

import (
	"github.com/gigurra/tunes/cmd/player/catalog"
	"github.com/samber/lo"
)

// Stopper halts audio output. The engine satisfies it.
type Stopper interface {
	Stop()
}

// Queue is an append-only list of tracks, emptied only by Clear.
// A track may appear any number of times.
type Queue struct {
	tracks  []catalog.Track
	stopper Stopper
}

func New(stopper Stopper) *Queue {
	return &Queue{stopper: stopper}
}

// Push appends track. It does not touch the engine.
func (q *Queue) Push(track catalog.Track) {
	q.tracks = append(q.tracks, track)
}

// Clear empties the queue and stops playback. Safe on an empty queue.
func (q *Queue) Clear() {
	q.tracks = nil
	q.stopper.Stop()
}

func (q *Queue) Len() int {
	return len(q.tracks)
}

// Front returns the first track, if any.
func (q *Queue) Front() (catalog.Track, bool) {
	if len(q.tracks) == 0 {
		return catalog.Track{}, false
	}
	return q.tracks[0], true
}

// Tracks returns a copy of the queue in submission order.
func (q *Queue) Tracks() []catalog.Track {
	return append([]catalog.Track(nil), q.tracks...)
}

func (q *Queue) Names() []string {
	return lo.Map(q.tracks, func(t catalog.Track, _ int) string { return t.Name })
}
