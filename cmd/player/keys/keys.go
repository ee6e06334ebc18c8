// Package keys decodes raw terminal input into key events.
package keys

import "unicode/utf8"

type Kind int

const (
	Press Kind = iota
	Release
)

type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyEsc
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Event is one decoded key. Rune is set for KeyRune and KeySpace.
type Event struct {
	Kind Kind
	Key  Key
	Rune rune
}

const esc = 0x1b

// Parse decodes everything in b. A raw terminal only reports presses.
// An escape byte at the end of b is the Esc key; followed by '[' or 'O' it
// starts a cursor key sequence.
func Parse(b []byte) []Event {
	var events []Event
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == esc:
			ev, n := parseEscape(b[i:])
			events = append(events, ev)
			i += n
			continue
		case c == '\r' || c == '\n':
			events = append(events, Event{Key: KeyEnter})
		case c == ' ':
			events = append(events, Event{Key: KeySpace, Rune: ' '})
		case c == 0x03:
			events = append(events, Event{Key: KeyCtrlC})
		case c < 0x20 || c == 0x7f:
			events = append(events, Event{Key: KeyUnknown})
		default:
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError {
				events = append(events, Event{Key: KeyUnknown})
			} else {
				events = append(events, Event{Key: KeyRune, Rune: r})
			}
			i += size
			continue
		}
		i++
	}
	return events
}

// parseEscape decodes a sequence starting with ESC and returns its length.
func parseEscape(b []byte) (Event, int) {
	if len(b) < 2 || (b[1] != '[' && b[1] != 'O') {
		return Event{Key: KeyEsc}, 1
	}

	// CSI/SS3: parameters, then a final byte in 0x40..0x7e.
	for j := 2; j < len(b); j++ {
		if b[j] < 0x40 || b[j] > 0x7e {
			continue
		}
		switch b[j] {
		case 'A':
			return Event{Key: KeyUp}, j + 1
		case 'B':
			return Event{Key: KeyDown}, j + 1
		case 'C':
			return Event{Key: KeyRight}, j + 1
		case 'D':
			return Event{Key: KeyLeft}, j + 1
		default:
			return Event{Key: KeyUnknown}, j + 1
		}
	}
	return Event{Key: KeyUnknown}, len(b)
}
