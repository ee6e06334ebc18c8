package engine

import (
	"errors"

	"github.com/gopxl/beep/v2"
)

// constStream yields n samples of value, then drains.
type constStream struct {
	value  float64
	n      int
	pos    int
	closed bool
}

func (s *constStream) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.n {
		return 0, false
	}
	count := 0
	for i := range samples {
		if s.pos >= s.n {
			break
		}
		samples[i] = [2]float64{s.value, s.value}
		s.pos++
		count++
	}
	return count, true
}

func (s *constStream) Err() error       { return nil }
func (s *constStream) Len() int         { return s.n }
func (s *constStream) Position() int    { return s.pos }
func (s *constStream) Seek(p int) error { s.pos = p; return nil }
func (s *constStream) Close() error     { s.closed = true; return nil }

// fakeOpener hands out constStreams and fails for paths listed in broken.
type fakeOpener struct {
	broken map[string]bool
	opened []*constStream
}

func (o *fakeOpener) Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	if o.broken[path] {
		return nil, beep.Format{}, errors.Join(ErrDecode, errors.New(path))
	}
	s := &constStream{value: 1, n: 100}
	o.opened = append(o.opened, s)
	return s, beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}, nil
}

// fakeSink records engine calls without touching audio hardware.
type fakeSink struct {
	streams []beep.StreamSeekCloser
	paused  bool
	volume  float64
	clears  int
}

func (s *fakeSink) Append(stream beep.StreamSeekCloser, _ beep.Format) {
	s.streams = append(s.streams, stream)
}

func (s *fakeSink) Clear() {
	s.clears++
	s.streams = nil
}

func (s *fakeSink) SetPaused(paused bool) { s.paused = paused }
func (s *fakeSink) SetVolume(v float64)   { s.volume = v }
func (s *fakeSink) Pending() int          { return len(s.streams) }
