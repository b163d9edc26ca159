// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// skin shrinks the bird's hitbox so that a bird in the cell next to a pipe
// does not count as touching it.
const skin = 0.01

var sprites = map[string][]string{
	"bird.txt": {"●▶", "●●"},
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg     config.FlappyConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand
	runtime core.RuntimeConfig
	sheet   *assets.Sheet

	bird   entity.Body // Speed carries the signed vertical velocity
	pipes  entity.List[pipe]
	spawn  entity.Spawner
	floor  float64 // Y of the ground line
	width  float64
	score  int
	tick   int
	latch  entity.Latch
	paused bool
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	g := &Game{cfg: config.DefaultFlappyConfig()}
	g.UseAssets(nil) //nolint:errcheck // Fallbacks never fail
	return g
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Flappy Bird" }

// Configure loads the YAML tuning.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadFlappy(path)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	return nil
}

// UseAssets resolves the bird sprite.
func (g *Game) UseAssets(store *assets.Store) error {
	g.sheet = assets.NewSheet(store, sprites)
	return nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.runtime = cfg
	g.floor = float64(max(cfg.ScreenH-1, 1))
	g.width = float64(cfg.ScreenW)
	g.score = 0
	g.tick = 0
	g.paused = false
	g.latch.Reset()
	g.pipes.Clear()
	g.spawn = entity.NewSpawner(g.cfg.Obstacles.SpawnEvery)

	pc := g.cfg.Player
	g.bird = entity.Body{
		Pos:    entity.V(float64(pc.X), g.floor/2),
		Dir:    entity.V(0, 1),
		W:      float64(pc.Width),
		H:      float64(pc.Height),
		Sprite: g.sheet.Handle("bird.txt"),
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.latch.Over() {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.latch.Over() {
		g.paused = !g.paused
	}
	if g.latch.Over() || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Flap
	if in.Has(core.ActionFire) || in.Has(core.ActionUp) {
		g.bird.Speed = g.cfg.Physics.JumpImpulse
	}

	// Apply physics
	g.bird.Speed = min(g.bird.Speed+g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)
	entity.Step(&g.bird, 1)

	g.movePipes()
	g.collide()

	g.spawn.Period = g.diff.Period(g.cfg.Obstacles.SpawnEvery, g.score, g.tick)
	if g.spawn.Tick() {
		g.spawnPipe()
	}

	return core.StepResult{State: g.State()}
}

// collide checks the ceiling, the ground and every pipe.
func (g *Game) collide() {
	if g.bird.Pos.Y < 0 {
		g.bird.Pos.Y = 0
		g.latch.Trip(entity.PhaseOver)
	}
	if g.bird.Box().Bottom() >= g.floor {
		g.bird.Pos.Y = g.floor - g.bird.H
		g.latch.Trip(entity.PhaseOver)
	}

	hit := g.hitbox()
	for _, p := range g.pipes.All() {
		top, bottom := p.boxes(g.floor)
		if entity.Overlaps(hit, top) || entity.Overlaps(hit, bottom) {
			g.latch.Trip(entity.PhaseOver)
			return
		}
	}
}

// hitbox returns the bird's box shrunk by skin on every side.
func (g *Game) hitbox() entity.Box {
	b := g.bird.Box()
	return entity.Box{X: b.X + skin, Y: b.Y + skin, W: b.W - 2*skin, H: b.H - 2*skin}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, int(g.floor), dst.Width(), GroundChar)

	for _, p := range g.pipes.All() {
		g.drawPipe(dst, p)
	}

	bx, by := g.bird.Pos.Cell()
	dst.DrawSprite(bx, by, g.sheet.Rows(g.bird.Sprite), core.ColorYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.diff.IsEnabled() {
		text := fmt.Sprintf(" Spd: %.1f ", g.speed())
		dst.DrawText(dst.Width()-len(text)-2, 0, text)
	}

	if g.paused {
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
	if g.latch.Over() {
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, p *pipe) {
	x, _ := p.Pos.Cell()
	w := int(p.W)
	floor := int(g.floor)

	dst.DrawRect(core.NewRect(x, 0, w, p.gapY), PipeChar, core.ColorGreen)
	if p.gapY > 0 {
		dst.DrawRect(core.NewRect(x, p.gapY-1, w, 1), PipeCapTop, core.ColorGreen)
	}

	bottomY := p.gapY + p.gap
	dst.DrawRect(core.NewRect(x, bottomY, w, floor-bottomY), PipeChar, core.ColorGreen)
	if bottomY < floor {
		dst.DrawRect(core.NewRect(x, bottomY, w, 1), PipeCapBottom, core.ColorGreen)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.latch.Over(),
		Paused:   g.paused,
	}
}

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick  int
	Score int
	Bird  entity.Vec
	Pipes int
	Over  bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Bird:  g.bird.Pos,
		Pipes: g.pipes.Len(),
		Over:  g.latch.Over(),
	}
}
