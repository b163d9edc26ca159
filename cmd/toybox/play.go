package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/toybox/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/hjkl/wasd - Move
  Space            - Fire
  P                - Pause
  R/Esc            - Restart (after game over)
  Ctrl+S           - Save a PNG snapshot to ~/.toybox/snapshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  toybox play snake
  toybox play invaders --difficulty easy
  toybox play shooter --config ./my-shooter.yaml
  toybox play ascii --assets ./assets`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	opts, err := gameOptions(newLogger("toybox"), args[0])
	if err != nil {
		fail("%v", err)
	}
	game := createGame(args[0], opts)

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
