// Package invaders implements a Space Invaders toy: rows of invaders sweep
// sideways, step down at the walls and must be shot before they land.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const hudHeight = 2

var sprites = map[string][]string{
	"cannon.txt":  {"_/^\\_"},
	"invader.txt": {"/o\\"},
	"laser.txt":   {"|"},
}

// invader is one enemy. Invaders of the same wave sweep as one formation.
type invader struct {
	entity.Body
	wave int
}

// Game implements Space Invaders.
type Game struct {
	cfg     config.InvadersConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    uint64
	dt      float64

	sheet *assets.Sheet

	field    entity.Bounds
	ship     entity.Body
	bullets  entity.List[entity.Body]
	invaders entity.List[invader]
	waves    entity.Spawner
	cooldown int

	score  int
	kills  int
	wave   int
	latch  entity.Latch
	paused bool
}

// New creates a Space Invaders game with default tuning.
func New() *Game {
	g := &Game{cfg: config.DefaultInvadersConfig()}
	g.UseAssets(nil) //nolint:errcheck // Fallbacks never fail
	return g
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// Configure loads the YAML tuning.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadInvaders(path)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	return nil
}

// UseAssets resolves the sprite sheet, with built-in fallbacks for sprites
// the store lacks.
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
	g.score = 0
	g.kills = 0
	g.wave = 0
	g.cooldown = 0
	g.paused = false
	g.latch.Reset()
	g.bullets.Clear()
	g.invaders.Clear()

	g.field = entity.Bounds{W: float64(cfg.ScreenW), H: float64(max(cfg.ScreenH-hudHeight, 1))}
	w := float64(g.cfg.Ship.Width)
	g.ship = entity.Body{
		Pos:    entity.V((g.field.W-w)/2, g.field.H-1),
		Speed:  g.cfg.Ship.Speed,
		W:      w,
		H:      1,
		Sprite: g.sheet.Handle("cannon.txt"),
	}

	g.waves = entity.NewSpawner(g.cfg.Enemies.SpawnEvery)
	g.spawnWave()
}

// Step advances the game by one tick.
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

	g.handleInput(input)
	g.move()
	g.collide()
	if !g.latch.Over() {
		g.waves.Period = g.diff.Period(g.cfg.Enemies.SpawnEvery, g.score, int(g.tick))
		if g.waves.Tick() {
			g.spawnWave()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(input core.InputFrame) {
	g.ship.Dir = entity.Vec{}
	if input.Has(core.ActionLeft) {
		g.ship.Dir.X--
	}
	if input.Has(core.ActionRight) {
		g.ship.Dir.X++
	}

	if g.cooldown > 0 {
		g.cooldown--
	}
	if input.Has(core.ActionFire) && g.cooldown == 0 {
		g.cooldown = g.cfg.Bullets.Cooldown
		g.bullets.Add(entity.Body{
			Pos:    entity.V(g.ship.Center().X-0.5, g.ship.Pos.Y-1),
			Dir:    entity.V(0, -1),
			Speed:  g.cfg.Bullets.Speed,
			W:      1,
			H:      1,
			Sprite: g.sheet.Handle("laser.txt"),
		})
	}
}

func (g *Game) move() {
	entity.Advance(&g.ship, g.dt, g.field, entity.EdgeClamp)

	for _, b := range g.bullets.All() {
		entity.Step(b, g.dt)
	}

	g.sweep()
}

// sweep moves every wave sideways. When any member of a wave reaches a
// wall, the whole wave is pushed back inside, reverses and drops a row.
func (g *Game) sweep() {
	speed := g.diff.Speed(g.cfg.Enemies.Speed, g.score, int(g.tick))
	push := make(map[int]float64)
	for _, inv := range g.invaders.All() {
		inv.Speed = speed
		c := entity.Advance(&inv.Body, g.dt, g.field, entity.EdgeNone)
		switch {
		case c.Has(entity.ContactLeft) && inv.Dir.X < 0:
			push[inv.wave] = max(push[inv.wave], -inv.Pos.X)
		case c.Has(entity.ContactRight) && inv.Dir.X > 0:
			push[inv.wave] = min(push[inv.wave], g.field.W-inv.W-inv.Pos.X)
		}
	}
	if len(push) == 0 {
		return
	}

	drop := float64(g.cfg.Enemies.Drop)
	for _, inv := range g.invaders.All() {
		dx, ok := push[inv.wave]
		if !ok {
			continue
		}
		inv.Pos.X += dx
		inv.Pos.Y += drop
		inv.Dir.X = -inv.Dir.X
	}
}

// collide resolves bullet/invader pairs, then removes both sides at once.
func (g *Game) collide() {
	usedBullets, hitInvaders, _ := entity.Resolve(&g.bullets, &g.invaders,
		func(b *entity.Body, inv *invader) bool {
			return inv.Box().Contains(b.Center())
		})
	g.bullets.Remove(usedBullets)
	killed := g.invaders.Remove(hitInvaders)
	g.bullets.RemoveFunc(func(_ entity.ID, b *entity.Body) bool {
		return b.Box().Bottom() < 0
	})

	g.kills += killed
	g.score += killed * g.cfg.Enemies.Points

	for _, inv := range g.invaders.All() {
		if inv.Box().Bottom() > g.ship.Pos.Y || entity.Overlaps(inv.Box(), g.ship.Box()) {
			g.latch.Trip(entity.PhaseOver)
			return
		}
	}
}

// spawnWave adds a row of invaders at the top, sweeping in a random direction.
func (g *Game) spawnWave() {
	ec := g.cfg.Enemies
	w, h := float64(ec.Width), float64(ec.Height)
	gap := w + 2
	n := max(int(g.field.W/gap)/2, 1)
	dir := entity.RandomSign(g.rng)
	for i := range n {
		g.invaders.Add(invader{
			Body: entity.Body{
				Pos:    entity.V(1+float64(i)*gap, 0),
				Dir:    entity.V(dir, 0),
				Speed:  ec.Speed,
				W:      w,
				H:      h,
				Sprite: g.sheet.Handle("invader.txt"),
			},
			wave: g.wave + 1,
		})
	}
	g.wave++
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	hud := fmt.Sprintf(" Invaders  Score: %d  Wave: %d  Kills: %d", g.score, g.wave, g.kills)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	for _, inv := range g.invaders.All() {
		g.draw(dst, &inv.Body, core.ColorGreen)
	}
	for _, b := range g.bullets.All() {
		g.draw(dst, b, core.ColorYellow)
	}
	g.draw(dst, &g.ship, core.ColorCyan)

	switch {
	case g.latch.Over():
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  Press R to restart", g.score))
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (g *Game) draw(dst *core.Screen, b *entity.Body, c core.Color) {
	x, y := b.Pos.Cell()
	dst.DrawSprite(x, hudHeight+y, g.sheet.Rows(b.Sprite), c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.latch.Over(),
		Paused:   g.paused,
	}
}
