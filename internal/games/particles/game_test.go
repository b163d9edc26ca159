package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 11, ScreenW: 60, ScreenH: 21, TickRate: 60})
	return g
}

func TestBurstCadence(t *testing.T) {
	g := newTestGame(t)
	empty := core.NewInputFrame()

	for range g.cfg.SpawnEvery - 1 {
		g.Step(empty)
	}
	assert.Equal(t, 0, g.particles.Len())

	g.Step(empty)
	assert.Equal(t, g.cfg.PerSpawn, g.particles.Len())
}

func TestFireSpawnsBurst(t *testing.T) {
	g := newTestGame(t)
	g.cfg.SpawnEvery = 0
	g.burst = entity.NewSpawner(0)

	g.Step(core.NewInputFrame(core.ActionFire))
	assert.Equal(t, g.cfg.PerSpawn, g.particles.Len())

	g.Step(core.NewInputFrame())
	assert.Equal(t, g.cfg.PerSpawn, g.particles.Len(), "a disabled spawner never fires")
}

func TestParticlesExpire(t *testing.T) {
	g := newTestGame(t)
	g.cfg.Lifetime = 0.5
	g.burst = entity.NewSpawner(0)
	g.spawnBurst()
	require.Equal(t, g.cfg.PerSpawn, g.particles.Len())

	ticks := int(0.5*60) + 1
	for range ticks {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.particles.Len())
	assert.Equal(t, g.cfg.PerSpawn, g.expired)
}

func TestMaxAliveCap(t *testing.T) {
	g := newTestGame(t)
	g.cfg.MaxAlive = 10
	g.cfg.PerSpawn = 4
	for range 5 {
		g.spawnBurst()
	}
	assert.Equal(t, 10, g.particles.Len())
}

func TestParticlesStayInsideWithReflect(t *testing.T) {
	g := newTestGame(t)
	g.cfg.Lifetime = 1000
	g.cfg.MaxSpeed = 80

	for range 1200 {
		g.Step(core.NewInputFrame())
		for _, p := range g.particles.All() {
			require.GreaterOrEqual(t, p.body.Pos.X, 0.0)
			require.LessOrEqual(t, p.body.Pos.X, g.field.W-1)
			require.GreaterOrEqual(t, p.body.Pos.Y, 0.0)
			require.LessOrEqual(t, p.body.Pos.Y, g.field.H-1)
		}
	}
}

func TestEdgeNoneDropsEscapees(t *testing.T) {
	g := newTestGame(t)
	g.cfg.Edge = entity.EdgeNone
	g.cfg.Lifetime = 1000
	g.burst = entity.NewSpawner(0)
	g.particles.Add(particle{body: entity.Body{Pos: entity.V(-5, 3), W: 1, H: 1}})

	g.Step(core.NewInputFrame())
	assert.Equal(t, 0, g.particles.Len())
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newTestGame(t), newTestGame(t)
	for range 300 {
		g1.Step(core.NewInputFrame())
		g2.Step(core.NewInputFrame())
	}
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}
