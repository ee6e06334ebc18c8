package player

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gigurra/tunes/cmd/player/catalog"
	"github.com/gigurra/tunes/cmd/player/engine"
	"github.com/gigurra/tunes/cmd/player/keys"
	"github.com/gigurra/tunes/cmd/player/playqueue"
	"github.com/gigurra/tunes/cmd/player/view"
)

// EventSource blocks until the next input event.
type EventSource interface {
	ReadEvent() (keys.Event, error)
}

// Loop is the single-goroutine controller: it reads one event, applies it to
// the queue and engine, redraws the affected regions and flushes.
type Loop struct {
	catalog *catalog.Catalog
	queue   *playqueue.Queue
	engine  *engine.Engine
	view    *view.Renderer
	events  EventSource
	step    float64

	selected   int
	nowPlaying string
	status     string
	running    bool
}

func NewLoop(
	cat *catalog.Catalog,
	queue *playqueue.Queue,
	eng *engine.Engine,
	renderer *view.Renderer,
	events EventSource,
	step float64,
) *Loop {
	return &Loop{
		catalog: cat,
		queue:   queue,
		engine:  eng,
		view:    renderer,
		events:  events,
		step:    step,
	}
}

// SetStatus sets the message shown on the status line at the next draw.
func (l *Loop) SetStatus(msg string) {
	l.status = msg
}

// Run draws the full screen and processes events until quit or end of input.
func (l *Loop) Run() error {
	l.running = true
	l.view.All(l.frame())
	if err := l.view.Flush(); err != nil {
		return err
	}

	for l.running {
		ev, err := l.events.ReadEvent()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		l.apply(CommandFor(ev))
		if err := l.view.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) apply(cmd Command) {
	switch cmd {
	case CmdNone:
		return
	case CmdQuit:
		l.running = false
		return
	case CmdUp:
		if l.selected > 0 {
			l.selected--
		}
	case CmdDown:
		if l.selected < l.catalog.Len()-1 {
			l.selected++
		}
	case CmdPlaySelected:
		l.playSelected()
	case CmdTogglePause:
		l.engine.TogglePause()
		if l.engine.Paused() {
			l.setStatus("Paused")
		} else {
			l.setStatus("")
		}
	case CmdEnqueue:
		if track, ok := l.catalog.At(l.selected); ok {
			l.queue.Push(track)
			l.view.Queue(l.queue.Names())
		}
	case CmdClearQueue:
		l.queue.Clear()
		l.view.Queue(l.queue.Names())
		l.setNowPlaying("")
		l.setStatus("")
	case CmdPlayQueue:
		l.playQueue()
	case CmdVolumeUp:
		l.view.Volume(l.engine.AdjustVolume(l.step))
	case CmdVolumeDown:
		l.view.Volume(l.engine.AdjustVolume(-l.step))
	}
	l.view.Select(l.catalog, l.selected)
}

func (l *Loop) playSelected() {
	track, ok := l.catalog.At(l.selected)
	if !ok {
		l.setStatus("Nothing to play: the library is empty")
		return
	}

	l.queue.Clear()
	played, err := l.engine.ReplaceAndPlay([]catalog.Track{track})
	if len(played) > 0 {
		l.queue.Push(track)
		l.setNowPlaying(track.Name)
		l.setStatus("")
	} else {
		l.setNowPlaying("")
	}
	if err != nil {
		l.reportError(err)
	}
	l.view.Queue(l.queue.Names())
}

func (l *Loop) playQueue() {
	if l.queue.Len() == 0 {
		l.setStatus("Queue is empty")
		return
	}

	played, err := l.engine.ReplaceAndPlay(l.queue.Tracks())
	if len(played) > 0 {
		l.setNowPlaying(played[0].Name)
		l.setStatus("")
	} else {
		l.setNowPlaying("")
	}
	if err != nil {
		l.reportError(err)
	}
}

func (l *Loop) reportError(err error) {
	slog.Error("playback error", "error", err)
	l.setStatus("Skipped: " + strings.ReplaceAll(err.Error(), "\n", "; "))
}

func (l *Loop) setNowPlaying(name string) {
	l.nowPlaying = name
	l.view.NowPlaying(name)
}

func (l *Loop) setStatus(msg string) {
	l.status = msg
	l.view.Status(msg)
}

func (l *Loop) frame() view.Frame {
	return view.Frame{
		Catalog:    l.catalog,
		Queue:      l.queue.Names(),
		NowPlaying: l.nowPlaying,
		Status:     l.status,
		Volume:     l.engine.Volume(),
		Selected:   l.selected,
	}
}
