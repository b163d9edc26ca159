package roses

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/core"
)

func TestCurve(t *testing.T) {
	pts := Curve(4, 9)
	require.Len(t, pts, maxDegrees)

	// theta = 0: r = a.
	assert.InDelta(t, amplitude, pts[0].X, 1e-9)
	assert.InDelta(t, 0, pts[0].Y, 1e-9)

	for _, p := range pts {
		assert.LessOrEqual(t, math.Hypot(p.X, p.Y), amplitude+1e-9)
	}
}

func TestRevealGrowsAndSaturates(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	assert.Equal(t, startPoints, g.State().Score)

	g.Step(core.NewInputFrame())
	assert.Equal(t, startPoints+revealPerTick, g.revealed)

	for range maxDegrees {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, maxDegrees, g.revealed)
	assert.False(t, g.State().GameOver)
}

func TestChangingPetalsRestarts(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	for range 10 {
		g.Step(core.NewInputFrame())
	}

	g.Step(core.NewInputFrame(core.ActionUp))
	assert.Equal(t, 5, g.n)
	assert.Equal(t, startPoints, g.revealed)

	g.Step(core.NewInputFrame(core.ActionLeft))
	assert.Equal(t, 8, g.d)

	g.d = 1
	g.Step(core.NewInputFrame(core.ActionLeft))
	assert.Equal(t, 1, g.d, "d never drops below 1")
}

func TestRenderPlotsStart(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	scr := core.NewScreen(80, 25)
	g.Render(scr)

	// The first point sits on the positive x axis.
	h := 25 - hudHeight
	zoom := math.Min(40, float64(h)) / amplitude * 0.95
	x := int(math.Round(40 + amplitude*zoom))
	y := int(math.Round(float64(hudHeight) + float64(h)/2))
	assert.Equal(t, '•', scr.Get(x, y))
	assert.Contains(t, scr.Row(0), "k=4/9")
}
