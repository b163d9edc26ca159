// Package tilings draws the regular tilings of the plane one tile at a
// time.
package tilings

import (
	"fmt"

	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const (
	hudHeight = 1
	aspect    = 2
	minSize   = 2
	maxSize   = 12
)

var kindColors = [kindCount]core.Color{core.ColorYellow, core.ColorCyan, core.ColorGreen}

// Game implements the visualizer. It never ends.
type Game struct {
	cfg  config.TilingsConfig
	tick uint64

	kind     Kind
	size     float64
	w, h     float64 // Field in rows
	tiles    [][]entity.Vec
	revealed int
	paused   bool
}

// New creates a visualizer with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultTilingsConfig()}
}

func init() {
	registry.Register("tilings", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tilings" }

// Title returns the display name.
func (g *Game) Title() string { return "Tilings" }

// Configure loads the YAML tuning and checks the tiling kind.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.LoadTilings(path)
	if err != nil {
		return err
	}
	if _, err := ParseKind(cfg.Kind); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset starts drawing the configured tiling.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.kind, _ = ParseKind(g.cfg.Kind)
	g.size = core.ClampF(g.cfg.Size, minSize, maxSize)
	g.w = float64(cfg.ScreenW) / aspect
	g.h = float64(max(cfg.ScreenH-hudHeight, 1))
	g.rebuild()
}

func (g *Game) rebuild() {
	g.tiles = tile(g.kind, g.size, g.w, g.h)
	g.revealed = 0
}

// Step reveals reveal_per_tick tiles. Left and right cycle the kind, up
// and down resize, fire reveals everything at once.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.revealed = 0
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case input.Has(core.ActionLeft):
		g.kind = (g.kind + kindCount - 1) % kindCount
		g.rebuild()
	case input.Has(core.ActionRight):
		g.kind = (g.kind + 1) % kindCount
		g.rebuild()
	case input.Has(core.ActionUp) && g.size < maxSize:
		g.size++
		g.rebuild()
	case input.Has(core.ActionDown) && g.size > minSize:
		g.size--
		g.rebuild()
	}

	if input.Has(core.ActionFire) {
		g.revealed = len(g.tiles)
	} else {
		g.revealed = min(g.revealed+max(g.cfg.RevealPerTick, 1), len(g.tiles))
	}
	return core.StepResult{State: g.State()}
}

// Render outlines the revealed tiles.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	for _, pts := range g.tiles[:g.revealed] {
		for i, p := range pts {
			x0, y0 := cell(p)
			x1, y1 := cell(pts[(i+1)%len(pts)])
			dst.DrawLine(x0, y0, x1, y1, '·', kindColors[g.kind])
		}
	}
	dst.DrawText(0, 0, fmt.Sprintf(" Tilings  %s  size %.0f  %d/%d", g.kind, g.size, g.revealed, len(g.tiles)))
	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// cell maps field coordinates to a screen cell.
func cell(p entity.Vec) (int, int) {
	return entity.V(p.X*aspect, p.Y+hudHeight).Cell()
}

// State returns the current state. Score is the number of tiles shown.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.revealed, Paused: g.paused}
}
