// Package session runs one game for a frontend: it steps the game, counts
// ticks of the current run and records the final score once per run.
package session

import (
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/registry"
	"github.com/vovakirdan/toybox/internal/storage"
)

// Session wraps a game with run bookkeeping. The store may be nil.
type Session struct {
	game  registry.Game
	store *storage.Store
	state core.GameState
	ticks int
	saved bool
}

// New creates a session for g. Call Reset before the first Step.
func New(g registry.Game, store *storage.Store) *Session {
	return &Session{game: g, store: store}
}

// Game returns the wrapped game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Reset starts a fresh run.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.game.Reset(cfg)
	s.state = s.game.State()
	s.ticks = 0
	s.saved = false
}

// Step advances the game one tick. A run that leaves the terminal state
// (the game handled a restart) starts a new tick count.
func (s *Session) Step(in core.InputFrame) core.GameState {
	was := s.state.GameOver
	s.state = s.game.Step(in).State

	if was && !s.state.GameOver {
		s.ticks = 0
		s.saved = false
	}
	if !s.state.GameOver && !s.state.Paused {
		s.ticks++
	}

	if s.state.GameOver && !s.saved {
		s.record()
		s.saved = true
	}
	return s.state
}

func (s *Session) record() {
	if s.store == nil || s.state.Score <= 0 {
		return
	}
	outcome := storage.OutcomeOver
	if s.state.Won {
		outcome = storage.OutcomeWon
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	s.store.SaveRun(storage.ScoreEntry{
		GameID:  s.game.ID(),
		Score:   s.state.Score,
		Outcome: outcome,
		Ticks:   s.ticks,
	})
}

// State returns the state after the last Step or Reset.
func (s *Session) State() core.GameState {
	return s.state
}

// Ticks returns the number of playing ticks in the current run.
func (s *Session) Ticks() int {
	return s.ticks
}

// Saved reports whether the current run has already been recorded.
func (s *Session) Saved() bool {
	return s.saved
}

// Render draws the game into dst.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)
}

// Play runs g headless for n ticks with no input from a fresh Reset and
// returns the last frame. Nothing is recorded.
func Play(g registry.Game, cfg core.RuntimeConfig, n int) (*core.Screen, core.GameState) {
	s := New(g, nil)
	s.Reset(cfg)
	empty := core.NewInputFrame()
	for range max(n, 0) {
		if s.State().GameOver {
			break
		}
		s.Step(empty)
	}
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	s.Render(screen)
	return screen, s.State()
}
