package player

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/charmbracelet/x/ansi"
	"github.com/gigurra/tunes/cmd/common"
	"github.com/gigurra/tunes/cmd/player/audio"
	"github.com/gigurra/tunes/cmd/player/catalog"
	"github.com/gigurra/tunes/cmd/player/engine"
	"github.com/gigurra/tunes/cmd/player/keys"
	"github.com/gigurra/tunes/cmd/player/playqueue"
	"github.com/gigurra/tunes/cmd/player/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Params struct {
	Dir     string  `short:"d" optional:"true" help:"Music directory. Defaults to $XDG_MUSIC_DIR or ~/Music."`
	Volume  float64 `optional:"true" help:"Initial volume, 0.0 to 1.0." default:"1.0"`
	Step    float64 `short:"s" optional:"true" help:"Volume change per key press." default:"0.1"`
	LogFile string  `optional:"true" help:"Log file. Defaults to tunes.log in the cache directory."`
}

const Long = `Play music from your library in the terminal.

Controls:
  Up/k, Down/j   - Move selection
  Enter          - Play the selected track now (replaces the queue)
  q              - Add the selected track to the queue
  p              - Play the whole queue from the start
  x              - Clear the queue and stop
  SPACE          - Pause / resume
  Left/h, Right/l - Volume down / up
  ESC, Ctrl+C    - Quit`

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play",
		Short:       "Play music from your library",
		Long:        Long,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			RunOrExit(params)
		},
	}.ToCobra()
}

// RunOrExit runs the player and exits with status 1 on failure.
func RunOrExit(params *Params) {
	if err := Run(params); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "tunes: %v\n", err)
		os.Exit(1)
	}
}

func Run(params *Params) error {
	dir := params.Dir
	if dir == "" {
		musicDir, err := common.MusicDir()
		if err != nil {
			return fmt.Errorf("could not find music directory: %w", err)
		}
		dir = musicDir
	}

	logPath := params.LogFile
	if logPath == "" {
		logPath = common.LogPath()
	}
	if closer, err := common.SetupLogging(logPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "tunes: logging disabled: %v\n", err)
	} else {
		defer closer.Close()
	}

	stdin := int(os.Stdin.Fd())
	if !term.IsTerminal(stdin) {
		return errors.New("stdin is not a terminal")
	}

	cat, err := catalog.Load(dir, audio.Decoder{})
	if err != nil {
		return err
	}

	out, closeAudio, err := engine.OpenSpeaker(engine.DefaultSampleRate)
	if err != nil {
		return err
	}
	defer closeAudio()

	eng := engine.New(out, audio.Decoder{}, params.Volume)
	queue := playqueue.New(eng)

	oldState, err := term.MakeRaw(stdin)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(stdin, oldState)

	screen := view.NewANSIScreen(os.Stdout, func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	})
	screen.Print(ansi.SetCursorStyle(2)) // steady block marks the selection
	defer func() {
		screen.ClearScreen()
		screen.MoveTo(0, 0)
		screen.Print(ansi.SetCursorStyle(0) + ansi.ResetStyle)
		_ = screen.Flush()
	}()

	loop := NewLoop(cat, queue, eng, view.NewRenderer(screen), keys.NewReader(os.Stdin), params.Step)
	if n := len(cat.Skipped); n > 0 {
		loop.SetStatus(fmt.Sprintf("Skipped %d unreadable file(s), see %s", n, logPath))
	} else if cat.Len() == 0 {
		loop.SetStatus("No audio files in " + dir)
	}

	slog.Info("player started", "dir", dir, "tracks", cat.Len())
	defer slog.Info("player stopped")
	return loop.Run()
}
