package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/platform/httpapi"
	"github.com/vovakirdan/toybox/internal/storage"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve scores and rendered frames over HTTP",
	Long: `Start a read-only HTTP API.

Routes:
  GET /games                  - registered games
  GET /scores/:game?limit=N   - top scores
  GET /scores/:game/best      - high score
  GET /stats/:game            - aggregated run statistics
  GET /snapshot/:game?ticks=N&seed=S - PNG frame after N ticks

Examples:
  toybox api
  toybox api --http :9090 --db ./scores.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address")
}

func runAPI(_ *cobra.Command, _ []string) {
	logger := newLogger("toybox-api")
	opts, err := gameOptions(logger, "")
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS

	err = httpapi.ListenAndServe(flagHTTPAddr, &httpapi.Server{
		Store:   store,
		Game:    opts,
		Runtime: rt,
		Logger:  logger,
	})
	if err != nil {
		fail("%v", err)
	}
}
