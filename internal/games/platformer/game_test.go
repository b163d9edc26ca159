package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
)

var testRuntime = core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60}

func newTestGame(t *testing.T, rows ...string) *Game {
	t.Helper()
	g := New()
	if len(rows) > 0 {
		require.NoError(t, g.loadLevel(rows))
	}
	g.Reset(testRuntime)
	return g
}

func steps(g *Game, n int, actions ...core.Action) {
	for range n {
		g.Step(core.NewInputFrame(actions...))
	}
}

func TestBuiltinLevel(t *testing.T) {
	l, err := parseLevel(builtinLevel)
	require.NoError(t, err)
	assert.Equal(t, 16, l.h)
	assert.Equal(t, 120, l.w)
	assert.Equal(t, entity.V(3, 13), l.start)
	assert.Len(t, l.enemies, 5)
	assert.Equal(t, ' ', l.at(3, 13), "markers are lifted out of the tiles")
}

func TestParseLevelErrors(t *testing.T) {
	_, err := parseLevel([]string{"   ", "###"})
	assert.ErrorIs(t, err, errNoStart)

	_, err = parseLevel([]string{"@ @", "###"})
	assert.Error(t, err)
}

func TestEdgesOfTheMap(t *testing.T) {
	l, err := parseLevel([]string{"@", "#"})
	require.NoError(t, err)
	assert.Equal(t, tileGround, l.at(-1, 0), "side walls are solid")
	assert.Equal(t, tileGround, l.at(1, 0))
	assert.Equal(t, ' ', l.at(0, -5), "the sky is open")
	assert.Equal(t, ' ', l.at(0, 9), "pits are bottomless")
}

func TestStandsOnGround(t *testing.T) {
	g := newTestGame(t,
		"          ",
		"  @       ",
		"##########",
	)
	steps(g, 30)
	assert.Equal(t, 1.0, g.player.Pos.Y)
	assert.True(t, g.player.onGround)
	assert.False(t, g.latch.Over())
}

func TestWallStopsRunning(t *testing.T) {
	g := newTestGame(t,
		" @  #",
		"#####",
	)
	steps(g, 60, core.ActionRight)
	assert.Equal(t, 3.0, g.player.Pos.X)
}

func TestJumpOnlyFromGround(t *testing.T) {
	g := newTestGame(t,
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
		"   @    ",
		"########",
	)
	steps(g, 2)
	require.True(t, g.player.onGround)

	g.Step(core.NewInputFrame(core.ActionFire))
	assert.Less(t, g.player.vy, 0.0)
	assert.False(t, g.player.onGround)

	vy := g.player.vy
	g.Step(core.NewInputFrame(core.ActionFire))
	assert.Greater(t, g.player.vy, vy, "no jumping in mid-air")

	// Apex is about jump_speed^2 / (2*gravity) cells up
	top := g.player.Pos.Y
	for range 120 {
		g.Step(core.NewInputFrame())
		top = min(top, g.player.Pos.Y)
	}
	assert.InDelta(t, 5-g.cfg.JumpSpeed*g.cfg.JumpSpeed/(2*g.cfg.Gravity), top, 0.5)
	assert.True(t, g.player.onGround)
}

func TestCeilingStopsJump(t *testing.T) {
	g := newTestGame(t,
		"#####",
		"     ",
		"  @  ",
		"#####",
	)
	steps(g, 2)
	g.Step(core.NewInputFrame(core.ActionFire))
	for range 10 {
		g.Step(core.NewInputFrame())
		require.GreaterOrEqual(t, g.player.Pos.Y, 1.0)
	}
}

func TestStompRemovesWalker(t *testing.T) {
	g := New()
	g.cfg.EnemySpeed = 0
	require.NoError(t, g.loadLevel([]string{
		"  @  ",
		"     ",
		"     ",
		"  e  ",
		"#####",
	}))
	g.Reset(testRuntime)

	for range 60 {
		g.Step(core.NewInputFrame())
		if g.stomped > 0 {
			break
		}
	}
	assert.Equal(t, 1, g.stomped)
	assert.Equal(t, 0, g.enemies.Len())
	assert.Equal(t, g.cfg.StompPoints, g.score)
	assert.Less(t, g.player.vy, 0.0, "a stomp bounces")
	assert.False(t, g.latch.Over())
}

func TestSideContactLoses(t *testing.T) {
	g := New()
	g.cfg.EnemySpeed = 0
	require.NoError(t, g.loadLevel([]string{
		"  @e    ",
		"########",
	}))
	g.Reset(testRuntime)

	steps(g, 10, core.ActionRight)
	assert.True(t, g.latch.Over())
	assert.False(t, g.latch.Won())
	assert.Equal(t, 1, g.enemies.Len())
}

func TestWalkerTurnsAtWall(t *testing.T) {
	g := newTestGame(t,
		"#e    @",
		"#######",
	)
	_, e := g.enemies.At(0)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 1.0, e.Dir.X)
	assert.Equal(t, 1.0, e.Pos.X)
}

func TestWalkerFallsIntoPit(t *testing.T) {
	g := newTestGame(t,
		"  e   @",
		"##  ###",
	)
	steps(g, 120)
	assert.Equal(t, 0, g.enemies.Len())
}

func TestPitLoses(t *testing.T) {
	g := newTestGame(t,
		"  @  ",
		"##  #",
	)
	for range 120 {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	assert.True(t, g.latch.Over())
	assert.Equal(t, entity.PhaseOver, g.latch.Phase())
}

func TestFlagWins(t *testing.T) {
	g := newTestGame(t,
		"   F",
		"  @F",
		"####",
	)
	var res core.StepResult
	for range 30 {
		res = g.Step(core.NewInputFrame(core.ActionRight))
		if res.State.GameOver {
			break
		}
	}
	assert.True(t, res.State.Won)
	assert.Equal(t, g.cfg.FlagPoints, res.State.Score)

	res = g.Step(core.NewInputFrame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
}

func TestLevelFromStore(t *testing.T) {
	store := assets.New()
	store.AddBoard("short.txt", []string{"@  F", "####"})

	g := New()
	g.cfg.Level = "short.txt"
	require.NoError(t, g.UseAssets(store))
	assert.Equal(t, 4, g.level.w)

	g.cfg.Level = "missing.txt"
	assert.ErrorIs(t, g.UseAssets(store), assets.ErrUnknownAsset)

	store.AddBoard("bad.txt", []string{"####"})
	g.cfg.Level = "bad.txt"
	assert.ErrorIs(t, g.UseAssets(store), errNoStart)
}

func TestCameraFollowsPlayer(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, 0, g.camera)

	g.player.Pos.X = 60
	g.follow()
	assert.Equal(t, 60-80/3, g.camera)

	g.player.Pos.X = 110
	g.follow()
	assert.Equal(t, 40, g.camera, "the view stops at the end of the map")
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t)
		for i := range 900 {
			in := core.NewInputFrame(core.ActionRight)
			if i%25 == 0 {
				in.Set(core.ActionFire)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	top := 24 - g.level.h
	assert.Equal(t, '█', screen.Get(0, top+15))
	assert.Equal(t, 'M', screen.Get(3, top+13))
	assert.Equal(t, 'ö', screen.Get(25, top+13))
}
