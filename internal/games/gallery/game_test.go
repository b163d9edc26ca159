package gallery

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

func TestResetPlacesCannonAndBin(t *testing.T) {
	g := newTestGame(t, 1)
	assert.Equal(t, entity.V(1, 22), g.origin)
	assert.Equal(t, 45.0, g.angle)
	assert.Equal(t, 20.0, g.laneX())
	require.Equal(t, 1, g.bins.Len())
	_, b := g.bins.At(0)
	assert.Equal(t, g.field.H, b.Box().Bottom(), "bins stand on the floor")
}

func TestAimIsClamped(t *testing.T) {
	g := newTestGame(t, 1)
	for range 100 {
		g.Step(core.NewInputFrame(core.ActionLeft))
	}
	assert.Equal(t, float64(maxAngle), g.angle)

	for range 200 {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	assert.Equal(t, 0.0, g.angle)
}

func TestFireSpendsAmmo(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.ActionFire))

	assert.Equal(t, 1, g.shots.Len())
	assert.Equal(t, g.cfg.Cannon.Ammo-1, g.ammo)
	_, s := g.shots.At(0)
	assert.Greater(t, s.Dir.X, 0.0)
	assert.Less(t, s.Dir.Y, 0.0, "a 45 degree shot climbs")
}

func TestShotArcs(t *testing.T) {
	g := newTestGame(t, 1)
	g.bins.Clear()
	g.Step(core.NewInputFrame(core.ActionFire))
	require.Equal(t, 1, g.shots.Len())
	_, s := g.shots.At(0)

	lastX, topY := s.Pos.X, s.Pos.Y
	fell := false
	for range 200 {
		g.Step(core.NewInputFrame())
		if g.shots.Len() == 0 {
			break
		}
		_, cur := g.shots.At(0)
		assert.Greater(t, cur.Pos.X, lastX, "drag never reverses a shot")
		lastX = cur.Pos.X
		if cur.Pos.Y < topY {
			require.False(t, fell, "a shot climbs only before its apex")
			topY = cur.Pos.Y
		} else {
			fell = true
		}
	}
	assert.True(t, fell)
	assert.Less(t, topY, g.origin.Y-5)
}

func TestShotDropsIntoBin(t *testing.T) {
	g := newTestGame(t, 1)
	g.bins.Clear()
	g.cfg.Targets.Speed = 0
	g.addBin(10, 1)
	box := g.binBox(mustBin(t, g))

	g.shots.Add(entity.Body{Pos: entity.V(box.X+2, box.Y-5), Dir: entity.V(0, 0.5), Speed: 1, W: 1, H: 1})
	for range 60 {
		g.Step(core.NewInputFrame())
		if g.score > 0 {
			break
		}
	}

	assert.Equal(t, 1, g.score)
	assert.Equal(t, 0, g.shots.Len(), "a caught shot is removed")
	assert.Equal(t, 1, g.bins.Len(), "the bin stays")
}

func TestShotBesideBinFallsThrough(t *testing.T) {
	g := newTestGame(t, 1)
	g.bins.Clear()
	g.cfg.Targets.Speed = 0
	g.addBin(10, 1)
	box := g.binBox(mustBin(t, g))

	g.shots.Add(entity.Body{Pos: entity.V(box.X-3, box.Y-5), Dir: entity.V(0, 0.5), Speed: 1, W: 1, H: 1})
	for range 60 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.score)
	assert.Equal(t, 0, g.shots.Len(), "shots leave through the floor")
}

func mustBin(t *testing.T, g *Game) *bin {
	t.Helper()
	require.Equal(t, 1, g.bins.Len())
	_, b := g.bins.At(0)
	return b
}

func TestBinPatrolsLane(t *testing.T) {
	g := newTestGame(t, 1)
	g.spawn = entity.NewSpawner(0)
	b := mustBin(t, g)
	b.Pos.X = g.lane.W - b.W - 0.1

	g.Step(core.NewInputFrame())
	assert.Equal(t, -1.0, b.Dir.X, "the bin turns at the right wall")

	for range 2000 {
		g.Step(core.NewInputFrame())
		box := g.binBox(b)
		require.GreaterOrEqual(t, box.X, g.laneX())
		require.LessOrEqual(t, box.Right(), g.field.W)
	}
}

func TestBinsSpawnUpToMax(t *testing.T) {
	g := newTestGame(t, 1)
	g.cfg.Targets.SpawnEvery = 1
	g.cfg.Targets.MaxAlive = 3
	g.spawn = entity.NewSpawner(1)

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 3, g.bins.Len())
}

func TestBinLifetime(t *testing.T) {
	g := newTestGame(t, 1)
	g.cfg.Targets.Lifetime = 5
	for range 5 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.bins.Len())
}

func TestOutOfAmmoEndsRound(t *testing.T) {
	g := newTestGame(t, 1)
	g.cfg.Cannon.Ammo = 1
	g.ammo = 1

	g.Step(core.NewInputFrame(core.ActionFire))
	assert.False(t, g.latch.Over(), "the last shot is still flying")
	g.Step(core.NewInputFrame(core.ActionFire))
	assert.Equal(t, 1, g.fired, "no ammo, no shot")

	for range 600 {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	assert.True(t, g.latch.Over())

	res := g.Step(core.NewInputFrame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 1, g.ammo)
}

func TestEndlessAmmo(t *testing.T) {
	g := newTestGame(t, 1)
	g.cfg.Cannon.Ammo = 0
	g.ammo = 0
	for range 300 {
		g.Step(core.NewInputFrame(core.ActionFire))
	}
	assert.False(t, g.latch.Over())
	assert.Equal(t, 300, g.fired)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 5)
		for i := range 1200 {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Set(core.ActionFire)
			}
			if i%7 == 0 {
				in.Set(core.ActionLeft)
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

	assert.Equal(t, '▲', screen.Get(1, 23))
	_, b := g.bins.At(0)
	box := g.binBox(b)
	assert.Equal(t, '\\', screen.Get(int(box.X), hudHeight+int(box.Y)+2))
}
