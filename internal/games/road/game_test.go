package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.cfg.Difficulty.Enabled = false
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func carAt(x, y float64) entity.Body {
	return entity.Body{Pos: entity.V(x, y), Dir: entity.V(0, 1), Speed: 15, W: 3, H: 3}
}

func TestRoadLayout(t *testing.T) {
	g := newTestGame(t, 1)
	assert.Equal(t, 30.0, g.road.W)
	assert.Equal(t, 25, g.left)
	assert.Equal(t, 23.0, g.road.H)
	assert.InDelta(t, 13.5, g.player.Pos.X, 1e-9)
}

func TestWideRoadFitsScreen(t *testing.T) {
	g := New()
	g.cfg.Width = 500
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 20, TickRate: 60})
	assert.Equal(t, 38.0, g.road.W)
	assert.Equal(t, 1, g.left)
}

func TestTrafficSpawnsOnCadence(t *testing.T) {
	g := newTestGame(t, 3)
	every := g.cfg.Traffic.SpawnEvery

	for range every - 1 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.traffic.Len())

	g.Step(core.NewInputFrame())
	require.Equal(t, 1, g.traffic.Len())
	_, car := g.traffic.At(0)
	assert.GreaterOrEqual(t, car.Pos.X, 0.0)
	assert.LessOrEqual(t, car.Box().Right(), g.road.W)
	assert.Less(t, car.Pos.Y, 0.0, "cars enter from above the road")
}

func TestTrafficMovesDownAndIsCounted(t *testing.T) {
	g := newTestGame(t, 1)
	g.spawn = entity.NewSpawner(0)
	g.cfg.Traffic.SpawnEvery = 0
	g.traffic.Add(carAt(0, g.road.H-0.1))

	g.Step(core.NewInputFrame())

	assert.Equal(t, 0, g.traffic.Len())
	assert.Equal(t, 1, g.passed)
	assert.Equal(t, 1, g.State().Score)
}

func TestCollisionEndsRun(t *testing.T) {
	g := newTestGame(t, 1)
	g.traffic.Add(carAt(g.player.Pos.X, g.player.Pos.Y-2))

	res := g.Step(core.NewInputFrame())
	assert.True(t, res.State.GameOver)

	before := g.Snapshot()
	g.Step(core.NewInputFrame(core.ActionLeft))
	after := g.Snapshot()
	assert.Equal(t, before.Player, after.Player, "a crashed car stays put")
}

func TestAdjacentLaneIsSafe(t *testing.T) {
	g := newTestGame(t, 1)
	g.traffic.Add(carAt(g.player.Box().Right(), g.player.Pos.Y))

	// The car rolls down alongside without touching
	g.Step(core.NewInputFrame())
	assert.False(t, g.latch.Over())
}

func TestShoulderCrash(t *testing.T) {
	g := newTestGame(t, 1)
	left := core.NewInputFrame(core.ActionLeft)

	for range 120 {
		if g.Step(left).State.GameOver {
			break
		}
	}
	assert.True(t, g.latch.Over())
	assert.Equal(t, 0.0, g.player.Pos.X, "the car never leaves the road")
}

func TestShoulderClampsWithoutCrash(t *testing.T) {
	g := newTestGame(t, 1)
	g.cfg.BorderCrash = false
	g.spawn = entity.NewSpawner(0)
	right := core.NewInputFrame(core.ActionRight)

	for range 120 {
		g.Step(right)
	}
	assert.False(t, g.latch.Over())
	assert.Equal(t, g.road.W-g.player.W, g.player.Pos.X)
}

func TestRestartAfterCrash(t *testing.T) {
	g := newTestGame(t, 1)
	g.latch.Trip(entity.PhaseOver)
	g.passed = 4

	res := g.Step(core.NewInputFrame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 99)
		for i := range 900 {
			in := core.NewInputFrame()
			switch (i / 30) % 4 {
			case 0:
				in.Set(core.ActionLeft)
			case 2:
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Equal(t, BorderChar, screen.Get(g.left-1, hudHeight))
	assert.Equal(t, BorderChar, screen.Get(g.left+int(g.road.W), hudHeight))

	x, y := g.player.Pos.Cell()
	assert.Equal(t, '▲', screen.Get(g.left+x+1, hudHeight+y))
}
