// Package httpapi serves read-only score data and rendered frames over HTTP.
package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/platform/session"
	"github.com/vovakirdan/toybox/internal/platform/snapshot"
	"github.com/vovakirdan/toybox/internal/registry"
	"github.com/vovakirdan/toybox/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	maxTicks     = 10000
)

// Server holds what the handlers read from.
type Server struct {
	Store   *storage.Store
	Game    registry.Options
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(s *Server) *gin.Engine {
	if s.Logger == nil {
		s.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "toybox-api"})
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.Logger))

	router.GET("/games", ListGames())
	router.GET("/scores/:game", TopScores(s.Store))
	router.GET("/scores/:game/best", BestScore(s.Store))
	router.GET("/stats/:game", GameStats(s.Store))
	router.GET("/snapshot/:game", Snapshot(s.Game, s.Runtime))
	return router
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

// gameParam resolves :game and aborts with 404 for unknown IDs.
func gameParam(c *gin.Context) (string, bool) {
	id := c.Param("game")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown game %q", id)})
		return "", false
	}
	return id, true
}

// ListGames returns every registered game.
func ListGames() gin.HandlerFunc {
	return func(c *gin.Context) {
		games := registry.List()
		out := make([]gin.H, 0, len(games))
		for _, g := range games {
			out = append(out, gin.H{"id": g.ID, "title": g.Title})
		}
		c.JSON(http.StatusOK, out)
	}
}

// TopScores returns the best runs of a game, best first. ?limit=N caps the list.
func TopScores(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameParam(c)
		if !ok {
			return
		}

		limit := defaultLimit
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = min(n, maxLimit)
		}

		scores, err := store.TopScores(id, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scores"})
			return
		}
		if scores == nil {
			scores = []storage.ScoreEntry{}
		}
		c.JSON(http.StatusOK, scores)
	}
}

// BestScore returns the high score of a game, 0 if none.
func BestScore(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameParam(c)
		if !ok {
			return
		}
		best, err := store.HighScore(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load high score"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": id, "score": best})
	}
}

// GameStats returns aggregated run statistics.
func GameStats(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameParam(c)
		if !ok {
			return
		}
		stats, err := store.GetGameStats(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// Snapshot plays a game headless and returns the frame as PNG.
// Query: ticks (default 60), seed (default 1).
func Snapshot(opts registry.Options, rt core.RuntimeConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameParam(c)
		if !ok {
			return
		}

		ticks, err := intQuery(c, "ticks", 60)
		if err != nil || ticks < 0 || ticks > maxTicks {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("ticks must be in [0, %d]", maxTicks)})
			return
		}
		seed, err := intQuery(c, "seed", 1)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}

		game, err := registry.Create(id)
		if err == nil {
			err = registry.Prepare(game, opts)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		cfg := rt
		cfg.Seed = int64(seed)
		screen, _ := session.Play(game, cfg, ticks)

		var buf bytes.Buffer
		if err := snapshot.Encode(&buf, screen); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode frame"})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// ListenAndServe serves the router on addr until SIGINT or SIGTERM.
func ListenAndServe(addr string, s *Server) error {
	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(s)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("starting HTTP API", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("httpapi: %w", err)
		}
		return nil
	case <-done:
	}

	s.Logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
