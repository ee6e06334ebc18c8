package player

import "github.com/gigurra/tunes/cmd/player/keys"

// Command is a user action, decoupled from the key that triggers it.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdUp
	CmdDown
	CmdPlaySelected
	CmdTogglePause
	CmdEnqueue
	CmdClearQueue
	CmdPlayQueue
	CmdVolumeUp
	CmdVolumeDown
)

// CommandFor maps a key press to its command. Releases map to CmdNone.
func CommandFor(ev keys.Event) Command {
	if ev.Kind != keys.Press {
		return CmdNone
	}

	switch ev.Key {
	case keys.KeyEsc, keys.KeyCtrlC:
		return CmdQuit
	case keys.KeyUp:
		return CmdUp
	case keys.KeyDown:
		return CmdDown
	case keys.KeyEnter:
		return CmdPlaySelected
	case keys.KeySpace:
		return CmdTogglePause
	case keys.KeyRight:
		return CmdVolumeUp
	case keys.KeyLeft:
		return CmdVolumeDown
	case keys.KeyRune:
		switch ev.Rune {
		case 'k':
			return CmdUp
		case 'j':
			return CmdDown
		case 'q':
			return CmdEnqueue
		case 'x':
			return CmdClearQueue
		case 'p':
			return CmdPlayQueue
		case 'l':
			return CmdVolumeUp
		case 'h':
			return CmdVolumeDown
		}
	}
	return CmdNone
}
