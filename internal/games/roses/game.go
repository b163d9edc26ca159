// Package roses draws a rose curve r = a*cos(k*theta), k = n/d, revealing a
// few more points every tick.
package roses

import (
	"fmt"
	"math"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/registry"
)

const (
	hudHeight     = 1
	amplitude     = 2.0
	maxDegrees    = 5000
	startPoints   = 20
	revealPerTick = 10
)

// Point is a curve point in curve units.
type Point struct {
	X, Y float64
}

// Game implements the rose visualizer. It never ends.
type Game struct {
	n, d     int
	points   []Point
	revealed int
	tick     uint64
	paused   bool
}

// New creates the classic 4/9 rose.
func New() *Game {
	return &Game{n: 4, d: 9}
}

func init() {
	registry.Register("roses", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "roses" }

// Title returns the display name.
func (g *Game) Title() string { return "Rose Curves" }

// Curve samples the rose for petal ratio n/d, one point per degree.
func Curve(n, d int) []Point {
	k := float64(n) / float64(max(d, 1))
	pts := make([]Point, 0, maxDegrees)
	for deg := range maxDegrees {
		theta := float64(deg) * math.Pi / 180
		r := amplitude * math.Cos(k*theta)
		pts = append(pts, Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
	}
	return pts
}

// Reset restarts the reveal. The curve parameters survive restarts.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.points = Curve(g.n, g.d)
	g.revealed = min(startPoints, len(g.points))
	g.tick = 0
	g.paused = false
}

// Step reveals more points. Up/Down change n, Left/Right change d.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	n, d := g.n, g.d
	switch {
	case input.Has(core.ActionUp):
		n++
	case input.Has(core.ActionDown):
		n = max(n-1, 1)
	case input.Has(core.ActionRight):
		d++
	case input.Has(core.ActionLeft):
		d = max(d-1, 1)
	}
	if n != g.n || d != g.d || input.Has(core.ActionRestart) {
		g.n, g.d = n, d
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.revealed = min(g.revealed+revealPerTick, len(g.points))
	}
	return core.StepResult{State: g.State()}
}

// Render plots the revealed points, halving y for terminal cell aspect.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, fmt.Sprintf(" Rose k=%d/%d  Points: %d/%d", g.n, g.d, g.revealed, len(g.points)))

	h := dst.Height() - hudHeight
	cx := float64(dst.Width()) / 2
	cy := float64(hudHeight) + float64(h)/2
	zoom := math.Min(float64(dst.Width())/2, float64(h)) / amplitude * 0.95

	for _, p := range g.points[:g.revealed] {
		x := int(math.Round(cx + p.X*zoom))
		y := int(math.Round(cy + p.Y*zoom/2))
		if y >= hudHeight {
			dst.SetColor(x, y, '•', core.ColorGreen)
		}
	}
}

// State returns the current state. Score is the number of revealed points.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.revealed, Paused: g.paused}
}
