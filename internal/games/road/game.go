// Package road is a top-down Road Fighter: steer left and right to avoid
// oncoming traffic without touching the shoulders.
package road

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const (
	hudHeight   = 1
	carGap      = 1 // Rows between the player's car and the bottom
	skin        = 0.01
	stripeEvery = 4
	BorderChar  = '║'
	StripeChar  = '¦'
)

var sprites = map[string][]string{
	"car.txt":     {"┌▲┐", "│█│", "└─┘"},
	"traffic.txt": {"┌─┐", "│█│", "└▼┘"},
}

// Game implements Road Fighter.
type Game struct {
	cfg     config.RoadConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    uint64
	dt      float64
	sheet   *assets.Sheet

	road    entity.Bounds // Road-local coordinates, x=0 is the left shoulder
	left    int           // Screen column of the road's left edge
	player  entity.Body
	traffic entity.List[entity.Body]
	spawn   entity.Spawner
	scroll  float64
	passed  int
	latch   entity.Latch
	paused  bool
}

// New creates a road with default tuning.
func New() *Game {
	g := &Game{cfg: config.DefaultRoadConfig()}
	g.UseAssets(nil) //nolint:errcheck // Fallbacks never fail
	return g
}

func init() {
	registry.Register("road", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "road" }

// Title returns the display name.
func (g *Game) Title() string { return "Road Fighter" }

// Configure loads the YAML tuning.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadRoad(path)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	return nil
}

// UseAssets resolves the car sprites.
func (g *Game) UseAssets(store *assets.Store) error {
	g.sheet = assets.NewSheet(store, sprites)
	return nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.runtime = cfg
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.scroll = 0
	g.passed = 0
	g.paused = false
	g.latch.Reset()
	g.traffic.Clear()
	g.spawn = entity.NewSpawner(g.cfg.Traffic.SpawnEvery)

	// Shoulders take one column on each side of the road
	w := g.cfg.Width
	if w <= 0 || w > cfg.ScreenW-2 {
		w = max(cfg.ScreenW-2, 1)
	}
	g.left = (cfg.ScreenW - w) / 2
	g.road = entity.Bounds{W: float64(w), H: float64(max(cfg.ScreenH-hudHeight, 1))}

	pc := g.cfg.Player
	g.player = entity.Body{
		Pos:    entity.V((g.road.W-float64(pc.Width))/2, g.road.H-float64(pc.Height)-carGap),
		Speed:  pc.Speed,
		W:      float64(pc.Width),
		H:      float64(pc.Height),
		Sprite: g.sheet.Handle("car.txt"),
	}
}

// Step advances the game by one tick: steer, move traffic, collide, spawn.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.latch.Over() {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) && !g.latch.Over() {
		g.paused = !g.paused
	}
	if g.latch.Over() || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.steer(input)
	g.moveTraffic()
	g.collide()

	g.spawn.Period = g.diff.Period(g.cfg.Traffic.SpawnEvery, g.passed, int(g.tick))
	if g.spawn.Tick() {
		g.spawnCar()
	}

	return core.StepResult{State: g.State()}
}

// steer moves the car sideways. The road clamps it; touching a shoulder
// crashes when border_crash is set.
func (g *Game) steer(input core.InputFrame) {
	g.player.Dir = entity.Vec{}
	if input.Has(core.ActionLeft) {
		g.player.Dir.X--
	}
	if input.Has(core.ActionRight) {
		g.player.Dir.X++
	}
	if g.player.Dir.X == 0 {
		return
	}
	c := entity.Advance(&g.player, g.dt, g.road, entity.EdgeClamp)
	if g.cfg.BorderCrash && (c.Has(entity.ContactLeft) || c.Has(entity.ContactRight)) {
		g.latch.Trip(entity.PhaseOver)
	}
}

func (g *Game) trafficSpeed() float64 {
	return g.diff.Speed(g.cfg.Traffic.Speed, g.passed, int(g.tick))
}

// moveTraffic drives every car down and retires the ones past the bottom.
func (g *Game) moveTraffic() {
	speed := g.trafficSpeed()
	for _, car := range g.traffic.All() {
		car.Speed = speed
		entity.Step(car, g.dt)
	}
	g.scroll += speed * g.dt
	g.passed += g.traffic.RemoveFunc(func(_ entity.ID, car *entity.Body) bool {
		return car.Pos.Y > g.road.H
	})
}

func (g *Game) collide() {
	b := g.player.Box()
	hit := entity.Box{X: b.X + skin, Y: b.Y + skin, W: b.W - 2*skin, H: b.H - 2*skin}
	for _, car := range g.traffic.All() {
		if entity.Overlaps(hit, car.Box()) {
			g.latch.Trip(entity.PhaseOver)
			return
		}
	}
}

// spawnCar adds a car above the top edge at a random column of the road.
func (g *Game) spawnCar() {
	tc := g.cfg.Traffic
	x := g.rng.Float64() * max(g.road.W-float64(tc.Width), 0)
	g.traffic.Add(entity.Body{
		Pos:    entity.V(x, -float64(tc.Height)),
		Dir:    entity.V(0, 1),
		Speed:  g.trafficSpeed(),
		W:      float64(tc.Width),
		H:      float64(tc.Height),
		Sprite: g.sheet.Handle("traffic.txt"),
	})
}

// Render draws the road, traffic and the player's car.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, fmt.Sprintf(" Road Fighter  Passed: %d  Speed: %.0f", g.passed, g.trafficSpeed()))

	w := int(g.road.W)
	mid := g.left + w/2
	offset := int(g.scroll)
	for y := 0; y < int(g.road.H); y++ {
		dst.SetColor(g.left-1, hudHeight+y, BorderChar, core.ColorGray)
		dst.SetColor(g.left+w, hudHeight+y, BorderChar, core.ColorGray)
		if (y-offset)%stripeEvery == 0 {
			dst.SetColor(mid, hudHeight+y, StripeChar, core.ColorYellow)
		}
	}

	for _, car := range g.traffic.All() {
		g.draw(dst, car, core.ColorRed)
	}
	g.draw(dst, &g.player, core.ColorCyan)

	switch {
	case g.latch.Over():
		dst.DrawOverlay("CRASH", fmt.Sprintf("Passed: %d  |  Press R to restart", g.passed))
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

func (g *Game) draw(dst *core.Screen, b *entity.Body, c core.Color) {
	x, y := b.Pos.Cell()
	dst.DrawSprite(g.left+x, hudHeight+y, g.sheet.Rows(b.Sprite), c)
}

// State returns the current state. Score is the number of cars passed.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.passed, GameOver: g.latch.Over(), Paused: g.paused}
}

// Snapshot captures the road state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Passed  int
	Player  entity.Vec
	Traffic int
	Over    bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Passed:  g.passed,
		Player:  g.player.Pos,
		Traffic: g.traffic.Len(),
		Over:    g.latch.Over(),
	}
}
