package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/registry"
	"github.com/vovakirdan/toybox/internal/storage"
)

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// fail prints an error the way every command reports it and exits 1.
func fail(format string, args ...any) {
	stopProfile()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.AssetsDir = flagAssets
	return cfg
}

// loadAssets loads the --assets directory once. No directory gives an
// empty store and games fall back to built-in sprites.
func loadAssets(logger *log.Logger) (*assets.Store, error) {
	if flagAssets == "" {
		return assets.New(assets.WithLogger(logger)), nil
	}
	return assets.Load(flagAssets, assets.WithLogger(logger))
}

// gameOptions collects everything registry.Prepare needs. game names the
// one game a single-game command runs; multi-game commands pass "".
func gameOptions(logger *log.Logger, game string) (registry.Options, error) {
	if err := validatePreset(flagDifficulty); err != nil {
		return registry.Options{}, err
	}
	configs, err := parseConfigs(flagConfig, game)
	if err != nil {
		return registry.Options{}, err
	}
	store, err := loadAssets(logger)
	if err != nil {
		return registry.Options{}, err
	}
	return registry.Options{
		Configs: configs,
		Preset:  config.DifficultyPreset(flagDifficulty),
		Assets:  store,
	}, nil
}

// parseConfigs maps --config values to games. A value is either
// <game>=<path> or a bare path, which only single-game commands accept.
func parseConfigs(values []string, game string) (map[string]string, error) {
	configs := make(map[string]string, len(values))
	for _, v := range values {
		if id, path, ok := strings.Cut(v, "="); ok && registry.Exists(id) {
			configs[id] = path
			continue
		}
		if game == "" {
			return nil, fmt.Errorf("--config %q: name the game as <game>=<path>", v)
		}
		configs[game] = v
	}
	return configs, nil
}

func validatePreset(p string) error {
	switch config.DifficultyPreset(p) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return nil
	}
	return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", p)
}

// createGame creates and prepares a registered game, exiting on failure.
func createGame(id string, opts registry.Options) registry.Game {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'toybox list' to see available games.")
		stopProfile()
		os.Exit(1)
	}
	game, err := registry.Create(id)
	if err != nil {
		fail("%v", err)
	}
	if err := registry.Prepare(game, opts); err != nil {
		fail("%v", err)
	}
	return game
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
