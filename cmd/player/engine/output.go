package engine

import (
	"math"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// DefaultSampleRate is the rate the output device is opened with.
const DefaultSampleRate = beep.SampleRate(44100)

// Output is the audio pipeline behind the speaker: pending streams play
// back-to-back, then go through a pause switch and a volume stage.
// Every mutation is made under lock, which is the speaker lock in production.
type Output struct {
	lock   sync.Locker
	rate   beep.SampleRate
	chain  *chain
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// NewOutput builds a pipeline producing samples at rate.
func NewOutput(rate beep.SampleRate, lock sync.Locker) *Output {
	c := &chain{}
	ctrl := &beep.Ctrl{Streamer: c}
	return &Output{
		lock:   lock,
		rate:   rate,
		chain:  c,
		ctrl:   ctrl,
		volume: &effects.Volume{Streamer: ctrl, Base: 2},
	}
}

// Stream implements beep.Streamer. It never drains; with nothing pending it plays silence.
func (o *Output) Stream(samples [][2]float64) (n int, ok bool) {
	return o.volume.Stream(samples)
}

func (o *Output) Err() error {
	return nil
}

// Append queues stream after everything already pending.
func (o *Output) Append(stream beep.StreamSeekCloser, format beep.Format) {
	var s beep.Streamer = stream
	if format.SampleRate != o.rate {
		s = beep.Resample(4, format.SampleRate, o.rate, stream)
	}

	o.lock.Lock()
	defer o.lock.Unlock()
	o.chain.items = append(o.chain.items, chainItem{streamer: s, closer: stream})
}

// Clear drops every pending stream, including the one currently audible.
func (o *Output) Clear() {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.chain.clear()
}

func (o *Output) SetPaused(paused bool) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.ctrl.Paused = paused
}

// SetVolume sets a linear gain in [0, 1].
func (o *Output) SetVolume(v float64) {
	o.lock.Lock()
	defer o.lock.Unlock()

	if v <= 0 {
		o.volume.Silent = true
		return
	}
	o.volume.Silent = false
	o.volume.Volume = math.Log2(v)
}

// Pending returns the number of streams not yet played to the end.
func (o *Output) Pending() int {
	o.lock.Lock()
	defer o.lock.Unlock()
	return len(o.chain.items)
}

type chainItem struct {
	streamer beep.Streamer
	closer   beep.StreamCloser
}

// chain plays its items one after another and drops each once drained.
type chain struct {
	items []chainItem
}

func (c *chain) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		if len(c.items) == 0 {
			for i := range samples[filled:] {
				samples[filled+i] = [2]float64{}
			}
			break
		}

		n, ok := c.items[0].streamer.Stream(samples[filled:])
		if !ok || n == 0 {
			_ = c.items[0].closer.Close()
			c.items = c.items[1:]
		}
		filled += n
	}
	return len(samples), true
}

func (c *chain) Err() error {
	return nil
}

func (c *chain) clear() {
	for _, item := range c.items {
		_ = item.closer.Close()
	}
	c.items = nil
}
