package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.cfg.Difficulty.Enabled = false
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 26, TickRate: 60})
	return g
}

func shotAt(center entity.Vec) entity.Body {
	return entity.Body{Pos: center.Sub(entity.V(0.5, 0.5)), Dir: entity.V(1, 0), W: 1, H: 1}
}

func TestBulletHitsBoss(t *testing.T) {
	g := newTestGame(t, 1)
	g.boss.Pos = entity.V(5, 5)
	g.boss.W, g.boss.H = 15, 15
	g.shots.Add(shotAt(entity.V(10.5, 10.5)))

	g.collide()

	assert.Equal(t, 1, g.hits)
	assert.Equal(t, 0, g.shots.Len(), "the bullet is removed")
	assert.Equal(t, g.cfg.Boss.Life-1, g.life)
	assert.Greater(t, g.hurt, 0)
	assert.Equal(t, entity.PhasePlaying, g.latch.Phase())
}

func TestSeveralBulletsHitInOneFrame(t *testing.T) {
	g := newTestGame(t, 1)
	c := g.boss.Center()
	g.shots.Add(shotAt(c))
	g.shots.Add(shotAt(c.Add(entity.V(1, 0))))
	miss := g.shots.Add(shotAt(entity.V(1, 1)))

	g.collide()

	assert.Equal(t, 2, g.hits)
	require.Equal(t, 1, g.shots.Len())
	id, _ := g.shots.At(0)
	assert.Equal(t, miss, id)
}

func TestLastHitWins(t *testing.T) {
	g := newTestGame(t, 1)
	g.life = 1
	g.shots.Add(shotAt(g.boss.Center()))

	g.collide()

	assert.Equal(t, 0, g.life)
	assert.Equal(t, entity.PhaseWon, g.latch.Phase())
	st := g.State()
	assert.True(t, st.GameOver)
	assert.True(t, st.Won)
}

func TestBossShotEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.bossShots.Add(shotAt(g.ship.Center()))

	g.collide()

	assert.Equal(t, entity.PhaseOver, g.latch.Phase())
	assert.Equal(t, 0, g.bossShots.Len())

	// The latch holds: a later win cannot replace the loss.
	g.life = 0
	g.collide()
	assert.Equal(t, entity.PhaseOver, g.latch.Phase())
}

func TestVolleyCadence(t *testing.T) {
	g := newTestGame(t, 3)
	period := g.cfg.Boss.ShootEvery
	empty := core.NewInputFrame()

	for range period - 1 {
		g.Step(empty)
	}
	assert.Equal(t, 0, g.bossShots.Len())

	g.Step(empty)
	n := g.bossShots.Len()
	assert.True(t, n == 1 || n == 6, "aimed shot, optionally with a five-way spread; got %d", n)
}

func TestBossShotSpawnsLeftOfBoss(t *testing.T) {
	g := newTestGame(t, 3)
	g.fireBoss(entity.V(-3, 0), 1)
	_, b := g.bossShots.At(0)
	assert.Less(t, b.Pos.X, g.boss.Pos.X)
	assert.Less(t, b.Dir.X, 0.0)
}

func TestFireAndShotsLeaveField(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.ActionFire))
	require.Equal(t, 1, g.shots.Len())

	_, b := g.shots.At(0)
	b.Pos.X = g.field.W + 5
	g.collide()
	assert.Equal(t, 0, g.shots.Len())
}

func TestShipIsClamped(t *testing.T) {
	g := newTestGame(t, 1)
	up := core.NewInputFrame(core.ActionUp, core.ActionLeft)
	for range 600 {
		g.Step(up)
		if g.latch.Over() {
			break
		}
	}
	assert.GreaterOrEqual(t, g.ship.Pos.X, 0.0)
	assert.GreaterOrEqual(t, g.ship.Pos.Y, 0.0)
}

func TestBossStaysInField(t *testing.T) {
	g := newTestGame(t, 1)
	for range 2000 {
		entity.Advance(&g.boss, g.dt, g.field, entity.EdgeReflect)
		require.GreaterOrEqual(t, g.boss.Pos.Y, 0.0)
		require.LessOrEqual(t, g.boss.Pos.Y, g.field.H-g.boss.H)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 99)
	g2 := newTestGame(t, 99)

	for i := range 400 {
		in := core.NewInputFrame()
		if i%9 == 0 {
			in.Set(core.ActionFire)
		}
		if i%50 < 25 {
			in.Set(core.ActionDown)
		}
		g1.Step(in)
		g2.Step(in)
	}
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestRestartAfterWin(t *testing.T) {
	g := newTestGame(t, 1)
	g.latch.Trip(entity.PhaseWon)

	g.Step(core.NewInputFrame(core.ActionRestart))
	assert.Equal(t, entity.PhasePlaying, g.latch.Phase())
	assert.Equal(t, g.cfg.Boss.Life, g.life)
}

func TestSpritesFromStore(t *testing.T) {
	store := assets.New()
	store.AddBoard("ship.txt", []string{"AB"})

	g := New()
	require.NoError(t, g.UseAssets(store))
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26})

	scr := core.NewScreen(80, 26)
	g.Render(scr)
	x, y := g.ship.Pos.Cell()
	assert.Equal(t, 'A', scr.Get(x, hudHeight+y))
	assert.Contains(t, scr.Row(0), "Boss 100/100")

	// Fallbacks stay in the game's own sheet.
	_, err := store.Lookup("boss.txt")
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)
	assert.Equal(t, 1, store.Len())
}

func TestHeldFireRespectsCooldown(t *testing.T) {
	g := newTestGame(t, 1)
	cd := g.cfg.Bullets.Cooldown
	require.Greater(t, cd, 1)

	const ticks = 40
	fire := core.NewInputFrame(core.ActionFire)
	for range ticks {
		g.Step(fire)
	}

	assert.Equal(t, (ticks-1)/cd+1, g.shots.Len())
	assert.Equal(t, 0, g.hits, "no shot reached the boss yet")
}
