package keys

import (
	"io"
	"time"
)

// escDelay is how long an unfinished escape sequence waits for its remaining bytes
// before it is decoded as typed. Terminals over ssh can split one key across reads.
const escDelay = 50 * time.Millisecond

type chunk struct {
	data []byte
	err  error
}

// Reader turns a raw terminal byte stream into events, one at a time.
type Reader struct {
	chunks  chan chunk
	partial []byte
	pending []Event
	err     error
	delay   time.Duration
}

// NewReader starts reading r in the background. The goroutine ends when r
// returns an error.
func NewReader(r io.Reader) *Reader {
	k := &Reader{chunks: make(chan chunk, 16), delay: escDelay}
	go readInput(r, k.chunks)
	return k
}

func readInput(r io.Reader, ch chan<- chunk) {
	for {
		buf := make([]byte, 64)
		n, err := r.Read(buf)
		if n > 0 {
			ch <- chunk{data: buf[:n]}
		}
		if err != nil {
			ch <- chunk{err: err}
			return
		}
	}
}

// ReadEvent blocks until the next event is available. After the input
// ends it returns the input's error, io.EOF included.
func (k *Reader) ReadEvent() (Event, error) {
	for len(k.pending) == 0 {
		if k.err != nil {
			return Event{}, k.err
		}
		k.receive()
	}

	ev := k.pending[0]
	k.pending = k.pending[1:]
	return ev, nil
}

func (k *Reader) receive() {
	var c chunk
	if len(k.partial) == 0 {
		c = <-k.chunks
	} else {
		select {
		case c = <-k.chunks:
		case <-time.After(k.delay):
			k.flush()
			return
		}
	}

	if c.err != nil {
		k.flush()
		k.err = c.err
		return
	}

	k.partial = append(k.partial, c.data...)
	cut := incompleteTail(k.partial)
	k.pending = Parse(k.partial[:cut])
	k.partial = append([]byte(nil), k.partial[cut:]...)
}

// flush decodes whatever is held back as it stands.
func (k *Reader) flush() {
	k.pending = Parse(k.partial)
	k.partial = nil
}

// incompleteTail returns the offset of a trailing escape sequence that may
// still be missing bytes, or len(b) when b ends on a complete key.
func incompleteTail(b []byte) int {
	i := len(b) - 1
	for i >= 0 && b[i] != esc {
		i--
	}
	if i < 0 {
		return len(b)
	}

	tail := b[i:]
	if len(tail) == 1 {
		return i
	}
	if tail[1] != '[' && tail[1] != 'O' {
		return len(b)
	}
	for _, c := range tail[2:] {
		if c >= 0x40 && c <= 0x7e {
			return len(b)
		}
	}
	return i
}
