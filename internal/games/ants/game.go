// Package ants runs Langton's ants. Each ant turns right on a white cell and
// left on a black one, flips the cell and steps forward. The board's edge
// policy is selectable: the "ants" variant wraps, "ants_clamp" clamps.
package ants

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const hudHeight = 1

// Headings in clockwise order.
var headings = [4]entity.Vec{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

type ant struct {
	body    entity.Body
	heading int // Index into headings
}

// Game implements the ants simulation. It never ends.
type Game struct {
	id    string
	title string
	edge  *entity.EdgePolicy // Forced policy; nil uses the config

	cfg     config.AntsConfig
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    uint64

	field  entity.Bounds
	cols   int
	rows   int
	black  []bool
	nBlack int
	ants   entity.List[ant]
	paused bool
}

// New creates the wrapping variant.
func New() *Game {
	return &Game{id: "ants", title: "Langton's Ants", cfg: config.DefaultAntsConfig()}
}

// NewClamped creates the variant whose ants are held inside the board.
func NewClamped() *Game {
	clamp := entity.EdgeClamp
	return &Game{id: "ants_clamp", title: "Langton's Ants (Clamped)", edge: &clamp, cfg: config.DefaultAntsConfig()}
}

func init() {
	registry.Register("ants", func() registry.Game {
		return New()
	})
	registry.Register("ants_clamp", func() registry.Game {
		return NewClamped()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Configure loads the YAML tuning. Difficulty presets do not apply.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.LoadAnts(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Edge returns the policy in effect.
func (g *Game) Edge() entity.EdgePolicy {
	if g.edge != nil {
		return *g.edge
	}
	return g.cfg.Edge
}

// Reset initializes/restarts the simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runtime = cfg
	g.tick = 0
	g.paused = false

	g.cols, g.rows = g.cfg.Width, g.cfg.Height
	if g.cols <= 0 {
		g.cols = cfg.ScreenW
	}
	if g.rows <= 0 {
		g.rows = cfg.ScreenH - hudHeight
	}
	g.cols, g.rows = max(g.cols, 1), max(g.rows, 1)
	g.field = entity.Bounds{W: float64(g.cols), H: float64(g.rows)}
	g.black = make([]bool, g.cols*g.rows)
	g.nBlack = 0

	g.ants.Clear()
	for range g.cfg.Count {
		x, y := entity.RandomCell(g.rng, g.cols, g.rows)
		h := g.rng.Intn(len(headings))
		g.ants.Add(ant{
			body:    entity.Body{Pos: entity.V(float64(x), float64(y)), Dir: headings[h], Speed: 1, W: 1, H: 1},
			heading: h,
		})
	}
}

// Step advances every ant by one move.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	edge := g.Edge()
	for _, a := range g.ants.All() {
		i := g.cell(a.body.Pos)
		if g.black[i] {
			a.heading = (a.heading + 3) % 4
			g.nBlack--
		} else {
			a.heading = (a.heading + 1) % 4
			g.nBlack++
		}
		g.black[i] = !g.black[i]

		a.body.Dir = headings[a.heading]
		entity.Advance(&a.body, 1, g.field, edge)
		// Reflect may have turned the ant around; keep the heading in sync.
		a.heading = headingOf(a.body.Dir)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) cell(p entity.Vec) int {
	x, y := p.Cell()
	x = min(max(x, 0), g.cols-1)
	y = min(max(y, 0), g.rows-1)
	return y*g.cols + x
}

func headingOf(d entity.Vec) int {
	for i, h := range headings {
		if h == d {
			return i
		}
	}
	return 0
}

// Render draws the board: black cells as blocks, ants on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, fmt.Sprintf(" %s  Steps: %d  Black: %d  Edge: %s", g.title, g.tick, g.nBlack, g.Edge()))

	for y := range g.rows {
		for x := range g.cols {
			if g.black[y*g.cols+x] {
				dst.SetColor(x, hudHeight+y, '█', core.ColorGray)
			}
		}
	}
	for _, a := range g.ants.All() {
		x, y := a.body.Pos.Cell()
		dst.SetColor(x, hudHeight+y, '@', core.ColorRed)
	}
	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// State returns the current state. Score is the number of black cells.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.nBlack, Paused: g.paused}
}

// Snapshot captures the simulation state for determinism tests.
type Snapshot struct {
	Tick  uint64
	Black int
	Ants  []entity.Vec
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Tick: g.tick, Black: g.nBlack}
	for _, a := range g.ants.All() {
		s.Ants = append(s.Ants, a.body.Pos)
	}
	return s
}
