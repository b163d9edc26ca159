package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/platform/window"
)

var (
	flagCols int
	flagRows int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the game in an Ebitengine window. Same controls as play;
Q closes the window.

Examples:
  toybox window shooter
  toybox window ants --cols 120 --rows 40`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 80, "Screen width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 30, "Screen height in cells")
}

func runWindow(_ *cobra.Command, args []string) {
	logger := newLogger("toybox-window")
	opts, err := gameOptions(logger, args[0])
	if err != nil {
		fail("%v", err)
	}
	game := createGame(args[0], opts)

	cfg := core.RuntimeConfig{
		ScreenW:   flagCols,
		ScreenH:   flagRows,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		AssetsDir: flagAssets,
	}

	store := openStore()
	runErr := window.Run(game, store, cfg, logger)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("%v", runErr)
	}
}
