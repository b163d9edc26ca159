// toybox runs small 2D game prototypes in the terminal, in a window, over
// SSH, or headless.
//
// Usage:
//
//	toybox list              - List available games
//	toybox play <game>       - Play a game in the terminal
//	toybox window <game>     - Play a game in a desktop window
//	toybox menu              - Start menu to pick games interactively
//	toybox serve             - Start SSH server for remote play
//	toybox scores <game>     - Show high scores for a game
//	toybox api               - Serve scores and frames over HTTP
//	toybox snap <game>       - Render a frame to PNG after N ticks
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.toybox/scores.db)
//	--assets <dir>      - Load sprites, boards and images from dir
//	--config <g>=<path> - Custom config YAML for game g (repeatable)
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--profile <mode>    - Write a cpu or mem profile to the working directory
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/toybox/internal/games/ants"
	_ "github.com/vovakirdan/toybox/internal/games/ascii"
	_ "github.com/vovakirdan/toybox/internal/games/dino"
	_ "github.com/vovakirdan/toybox/internal/games/flappy"
	_ "github.com/vovakirdan/toybox/internal/games/gallery"
	_ "github.com/vovakirdan/toybox/internal/games/invaders"
	_ "github.com/vovakirdan/toybox/internal/games/particles"
	_ "github.com/vovakirdan/toybox/internal/games/platformer"
	_ "github.com/vovakirdan/toybox/internal/games/road"
	_ "github.com/vovakirdan/toybox/internal/games/roses"
	_ "github.com/vovakirdan/toybox/internal/games/shooter"
	_ "github.com/vovakirdan/toybox/internal/games/snake"
	_ "github.com/vovakirdan/toybox/internal/games/spiral"
	_ "github.com/vovakirdan/toybox/internal/games/tilings"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagAssets     string
	flagConfig     []string
	flagDifficulty string
	flagProfile    string

	profiler interface{ Stop() }
)

func main() {
	err := rootCmd.Execute()
	stopProfile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "toybox",
	Short: "toybox - small 2D game prototypes",
	Long: `toybox is a collection of small 2D game prototypes sharing one
entity update/collision loop.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  api      - Serve scores and frames over HTTP
  snap     - Render a frame to PNG

Examples:
  toybox list
  toybox play snake
  toybox play invaders --difficulty hard
  toybox window shooter
  toybox play ascii --assets ./assets
  toybox snap particles --ticks 120 --out particles.png`,
	SilenceUsage:      true,
	PersistentPreRunE: startProfile,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.toybox/scores.db", "Path to scores database")
	pf.StringVar(&flagAssets, "assets", "", "Asset directory (empty = built-in sprites only)")
	pf.StringArrayVar(&flagConfig, "config", nil, "Game config YAML as <game>=<path> (repeatable); a bare path applies to the game being played")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagProfile, "profile", "", "Profile mode: cpu or mem")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(snapCmd)
}

func startProfile(_ *cobra.Command, _ []string) error {
	switch flagProfile {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", flagProfile)
	}
	return nil
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
