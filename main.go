package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/tunes/cmd/common"
	"github.com/gigurra/tunes/cmd/list"
	"github.com/gigurra/tunes/cmd/player"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[player.Params]{
		Use:         "tunes",
		Short:       "Terminal music player",
		Long:        player.Long,
		Version:     appVersion(),
		ParamEnrich: common.DefaultParamEnricher(),
		SubCmds: []*cobra.Command{
			player.Cmd(),
			list.Cmd(),
		},
		RunFunc: func(params *player.Params, cmd *cobra.Command, args []string) {
			player.RunOrExit(params)
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
