// Package spiral draws an Archimedean spiral point by point, with a
// polygon marker on every few points.
package spiral

import (
	"fmt"
	"math"

	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const (
	hudHeight = 1
	aspect    = 2 // Columns per row of height
	alphaStep = 0.05
	minAlpha  = 0.05
	markShare = 3 // Marker radius is r/markShare
)

// point is one sample of the spiral in polar and field coordinates.
type point struct {
	pos   entity.Vec
	r     float64
	angle float64
}

// Game implements the spiral. It never ends; once the spiral fills the
// field it stops growing.
type Game struct {
	cfg  config.SpiralConfig
	tick uint64

	alpha  float64
	angle  float64
	maxR   float64
	center entity.Vec
	points []point
	next   entity.Spawner
	marks  bool
	paused bool
}

// New creates a spiral with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultSpiralConfig()}
}

func init() {
	registry.Register("spiral", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "spiral" }

// Title returns the display name.
func (g *Game) Title() string { return "Spiral" }

// Configure loads the YAML tuning. Difficulty presets do not apply.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.LoadSpiral(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset clears the drawing.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.alpha = max(g.cfg.Alpha, minAlpha)
	g.marks = true
	g.paused = false

	h := float64(max(cfg.ScreenH-hudHeight, 1))
	w := float64(cfg.ScreenW) / aspect
	g.center = entity.V(w/2, h/2)
	g.maxR = math.Hypot(w/2, h/2)
	g.restart()
}

// restart begins a new spiral with the current alpha.
func (g *Game) restart() {
	g.angle = 0
	g.points = g.points[:0]
	g.next = entity.NewSpawner(max(g.cfg.PointEvery, 1))
}

// Step adds a point every point_every ticks. Left and right loosen or
// tighten the spiral, fire toggles the markers.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionFire) {
		g.marks = !g.marks
	}
	switch {
	case input.Has(core.ActionLeft):
		g.alpha = max(g.alpha-alphaStep, minAlpha)
		g.restart()
	case input.Has(core.ActionRight):
		g.alpha += alphaStep
		g.restart()
	}

	if !g.Full() && g.next.Tick() {
		g.grow()
	}
	return core.StepResult{State: g.State()}
}

// grow adds the next point: r = alpha * angle.
func (g *Game) grow() {
	g.angle += g.cfg.AngleStep
	r := g.alpha * g.angle
	g.points = append(g.points, point{
		pos:   g.center.Add(entity.V(r*math.Cos(g.angle), r*math.Sin(g.angle))),
		r:     r,
		angle: g.angle,
	})
}

// Full reports whether the spiral has reached the field corners.
func (g *Game) Full() bool {
	return g.alpha*g.angle >= g.maxR
}

// Render plots the points and the markers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, fmt.Sprintf(" Spiral  r = %.2fθ  Points: %d", g.alpha, len(g.points)))

	for i, p := range g.points {
		if g.marks && g.cfg.MarkEvery > 0 && (i+1)%g.cfg.MarkEvery == 0 {
			outline(dst, entity.Polygon(p.pos, p.r/markShare, g.cfg.MarkSides, p.angle), core.ColorGreen)
		}
	}
	for _, p := range g.points {
		x, y := cell(p.pos)
		dst.SetColor(x, y, '•', core.ColorWhite)
	}
	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// cell maps field coordinates to a screen cell.
func cell(p entity.Vec) (int, int) {
	return entity.V(p.X*aspect, p.Y+hudHeight).Cell()
}

func outline(dst *core.Screen, pts []entity.Vec, c core.Color) {
	for i, p := range pts {
		x0, y0 := cell(p)
		x1, y1 := cell(pts[(i+1)%len(pts)])
		dst.DrawLine(x0, y0, x1, y1, '·', c)
	}
}

// State returns the current state. Score is the number of points drawn.
func (g *Game) State() core.GameState {
	return core.GameState{Score: len(g.points), Paused: g.paused}
}
