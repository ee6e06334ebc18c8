package player

import (
	"testing"

	"github.com/gigurra/tunes/cmd/player/keys"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		event    keys.Event
		expected Command
	}{
		{press(keys.KeyEsc), CmdQuit},
		{press(keys.KeyCtrlC), CmdQuit},
		{press(keys.KeyUp), CmdUp},
		{char('k'), CmdUp},
		{press(keys.KeyDown), CmdDown},
		{char('j'), CmdDown},
		{press(keys.KeyEnter), CmdPlaySelected},
		{press(keys.KeySpace), CmdTogglePause},
		{char('q'), CmdEnqueue},
		{char('x'), CmdClearQueue},
		{char('p'), CmdPlayQueue},
		{press(keys.KeyRight), CmdVolumeUp},
		{char('l'), CmdVolumeUp},
		{press(keys.KeyLeft), CmdVolumeDown},
		{char('h'), CmdVolumeDown},
		{char('Q'), CmdNone},
		{press(keys.KeyUnknown), CmdNone},
		{keys.Event{Kind: keys.Release, Key: keys.KeyEsc}, CmdNone},
	}

	for _, tt := range tests {
		if got := CommandFor(tt.event); got != tt.expected {
			t.Errorf("CommandFor(%+v) = %v, want %v", tt.event, got, tt.expected)
		}
	}
}
