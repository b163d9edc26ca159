package dino

import (
	"testing"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func cactusAt(g *Game, x float64, w, h int) entity.Body {
	return entity.Body{
		Pos: entity.V(x, g.groundY-float64(h)),
		Dir: entity.V(-1, 0),
		W:   float64(w),
		H:   float64(h),
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig(54321)

	// Jump every 40 ticks
	inputs := make([]core.InputFrame, 500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%40 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed: %+v != %+v", s1, s2)
	}
}

func TestGameReset(t *testing.T) {
	cfg := testConfig(42)
	g := New()
	g.Reset(cfg)

	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.latch.Over() {
		t.Error("Reset should clear the game over latch")
	}
	if !g.grounded {
		t.Error("Reset should put the dino on the ground")
	}
	if g.cacti.Len() != 0 {
		t.Errorf("Reset should clear cacti, got %d", g.cacti.Len())
	}
}

func TestJumpAndLand(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	restY := g.dino.Pos.Y

	g.Step(core.NewInputFrame(core.ActionFire))
	if g.grounded {
		t.Fatal("Dino should leave the ground")
	}
	if g.dino.Pos.Y >= restY {
		t.Errorf("Jump should move dino up, was %f, now %f", restY, g.dino.Pos.Y)
	}

	for i := 0; i < 100 && !g.grounded; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.grounded {
		t.Fatal("Dino should land again")
	}
	if g.dino.Pos.Y != restY {
		t.Errorf("Dino should land at %f, got %f", restY, g.dino.Pos.Y)
	}
}

func TestNoDoubleJump(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.Step(core.NewInputFrame(core.ActionFire))
	speed := g.dino.Speed
	g.Step(core.NewInputFrame(core.ActionFire))

	if g.dino.Speed <= speed {
		t.Errorf("Second press in the air should not jump again, speed %f -> %f", speed, g.dino.Speed)
	}
}

func TestScoreCountsTicks(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.cfg.Obstacles.SpawnEvery = nil
	g.spawn = entity.NewSpawner(0)

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.score != 30 {
		t.Errorf("Score should count ticks, got %d", g.score)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.Step(core.NewInputFrame(core.ActionPause))
	if !g.paused {
		t.Fatal("Game should be paused")
	}
	score := g.score
	g.Step(core.NewInputFrame())
	if g.score != score {
		t.Error("Score should not change while paused")
	}
}

func TestCactusCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.cacti.Add(cactusAt(g, float64(g.cfg.Player.X+1), 2, 3))
	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Game should be over when dino hits a cactus")
	}
}

func TestJumpClearsCactus(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Jump, then put a short cactus under the dino at its peak
	g.Step(core.NewInputFrame(core.ActionFire))
	for g.dino.Speed < 0 {
		g.Step(core.NewInputFrame())
	}
	g.cacti.Add(cactusAt(g, float64(g.cfg.Player.X), 2, 2))
	result := g.Step(core.NewInputFrame())

	if result.State.GameOver {
		t.Errorf("Dino at y=%f should clear a 2-high cactus", g.dino.Pos.Y)
	}
}

func TestCactusSpawnAndRemoval(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.cfg.Obstacles.SpawnEvery = []int{5}
	g.spawn = entity.NewSpawner(5)

	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.cacti.Len() != 1 {
		t.Fatalf("Expected one cactus after 5 ticks, got %d", g.cacti.Len())
	}
	_, c := g.cacti.At(0)
	oc := g.cfg.Obstacles
	if int(c.W) < oc.MinWidth || int(c.W) > oc.MaxWidth || int(c.H) < oc.MinHeight || int(c.H) > oc.MaxHeight {
		t.Errorf("Cactus size %vx%v out of range", c.W, c.H)
	}
	if c.Box().Bottom() != g.groundY {
		t.Errorf("Cactus should stand on the ground, bottom %f", c.Box().Bottom())
	}

	g.cacti.Clear()
	g.spawn = entity.NewSpawner(0)
	g.cacti.Add(cactusAt(g, -2.9, 3, 2))
	g.Step(core.NewInputFrame())
	if g.cacti.Len() != 0 {
		t.Errorf("Cactus past the left edge should be removed, got %d", g.cacti.Len())
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	groundY := int(g.groundY)
	if screen.Get(0, groundY) != GroundChar {
		t.Errorf("Ground should be drawn at row %d, got %q", groundY, screen.Get(0, groundY))
	}
	x, y := g.dino.Pos.Cell()
	if screen.Get(x+1, y) != '◆' {
		t.Errorf("Dino head should be drawn at (%d,%d), got %q", x+1, y, screen.Get(x+1, y))
	}
}
