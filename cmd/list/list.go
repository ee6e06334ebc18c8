package list

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/tunes/cmd/common"
	"github.com/gigurra/tunes/cmd/player/audio"
	"github.com/gigurra/tunes/cmd/player/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir     string `short:"d" optional:"true" help:"Music directory. Defaults to $XDG_MUSIC_DIR or ~/Music."`
	LogFile string `optional:"true" help:"Log file. Defaults to tunes.log in the cache directory."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "list",
		Short:       "List the tracks in the music library",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout, os.Stderr); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "list: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdout, stderr io.Writer) error {
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
		_, _ = fmt.Fprintf(stderr, "list: logging disabled: %v\n", err)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	} else {
		defer closer.Close()
	}

	cat, err := catalog.Load(dir, audio.Decoder{})
	if err != nil {
		return err
	}

	for _, skipped := range cat.Skipped {
		_, _ = fmt.Fprintf(stderr, "list: skipped %v\n", skipped)
	}

	RenderTable(stdout, cat)
	return nil
}

// RenderTable prints the catalog in its display order.
func RenderTable(out io.Writer, cat *catalog.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault

	t.AppendHeader(table.Row{"#", "Name", "Time"})
	for i, track := range cat.Tracks() {
		t.AppendRow(table.Row{strconv.Itoa(i), track.Name, track.FormatDuration()})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d tracks", cat.Len()), fmt.Sprintf("%.1fs", cat.TotalDuration().Seconds())})

	t.Render()
}
