// Package shooter is a side-scrolling boss fight: the ship dodges aimed and
// spread volleys while chipping away at the boss's life.
package shooter

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const (
	hudHeight  = 2
	shipMargin = 2
	starCount  = 24
)

// Sprite asset names and their built-in fallbacks.
var sprites = map[string][]string{
	"ship.txt":      {"=]>"},
	"boss.txt":      {" /##\\", "<####|", "<#()#|", "<####|", " \\##/"},
	"boss_hurt.txt": {" /**\\", "<****|", "<*()*|", "<****|", " \\**/"},
	"shot.txt":      {"-"},
	"boss_shot.txt": {"o"},
}

// Game implements the shooter.
type Game struct {
	cfg     config.ShooterConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    uint64
	dt      float64

	sheet *assets.Sheet

	field     entity.Bounds
	ship      entity.Body
	boss      entity.Body
	shots     entity.List[entity.Body] // Player bullets
	bossShots entity.List[entity.Body]
	volley    entity.Spawner

	cooldown int

	life   int
	hits   int
	hurt   int // Ticks left on the hurt flash
	score  int
	scroll float64
	stars  []entity.Vec
	latch  entity.Latch
	paused bool
}

// New creates a shooter with default tuning.
func New() *Game {
	g := &Game{cfg: config.DefaultShooterConfig()}
	g.UseAssets(nil) //nolint:errcheck // Fallbacks never fail
	return g
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "shooter" }

// Title returns the display name.
func (g *Game) Title() string { return "Space Shooter" }

// Configure loads the YAML tuning.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadShooter(path)
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

func (g *Game) sprite(name string) []string {
	return g.sheet.Sprite(name)
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.runtime = cfg
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.score = 0
	g.hits = 0
	g.hurt = 0
	g.cooldown = 0
	g.scroll = 0
	g.paused = false
	g.latch.Reset()
	g.shots.Clear()
	g.bossShots.Clear()

	g.field = entity.Bounds{W: float64(cfg.ScreenW), H: float64(max(cfg.ScreenH-hudHeight, 1))}

	sc := g.cfg.Ship
	g.ship = entity.Body{
		Pos:    entity.V(shipMargin, (g.field.H-float64(sc.Height))/2),
		Speed:  sc.Speed,
		W:      float64(sc.Width),
		H:      float64(sc.Height),
		Sprite: g.sheet.Handle("ship.txt"),
	}

	bc := g.cfg.Boss
	g.boss = entity.Body{
		Pos:    entity.V(g.field.W-float64(bc.Width)-shipMargin, (g.field.H-float64(bc.Height))/2),
		Dir:    entity.V(0, 1),
		Speed:  bc.Speed,
		W:      float64(bc.Width),
		H:      float64(bc.Height),
		Sprite: g.sheet.Handle("boss.txt"),
	}
	g.life = bc.Life
	g.volley = entity.NewSpawner(bc.ShootEvery)

	g.stars = g.stars[:0]
	for range starCount {
		g.stars = append(g.stars, entity.RandomPoint(g.rng, g.field, 1, 1))
	}
}

// Step advances the game by one tick: input, movement, collisions,
// removal, spawning.
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
	g.spawn()

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(input core.InputFrame) {
	var dir entity.Vec
	if input.Has(core.ActionLeft) {
		dir.X--
	}
	if input.Has(core.ActionRight) {
		dir.X++
	}
	if input.Has(core.ActionUp) {
		dir.Y--
	}
	if input.Has(core.ActionDown) {
		dir.Y++
	}
	g.ship.Dir = dir

	if g.cooldown > 0 {
		g.cooldown--
	}
	if input.Has(core.ActionFire) && g.cooldown == 0 {
		g.cooldown = g.cfg.Bullets.Cooldown
		size := g.cfg.Bullets.Size
		g.shots.Add(entity.Body{
			Pos:    entity.V(g.ship.Box().Right()+1, g.ship.Center().Y-size/2),
			Dir:    entity.V(1, 0),
			Speed:  g.cfg.Bullets.Speed,
			W:      size,
			H:      size,
			Sprite: g.sheet.Handle("shot.txt"),
		})
	}
}

func (g *Game) move() {
	entity.Advance(&g.ship, g.dt, g.field, entity.EdgeClamp)
	entity.Advance(&g.boss, g.dt, g.field, entity.EdgeReflect)

	for _, b := range g.shots.All() {
		entity.Step(b, g.dt)
	}
	for _, b := range g.bossShots.All() {
		entity.Step(b, g.dt)
	}

	g.scroll += g.cfg.Background * g.dt
	if g.scroll >= g.field.W {
		g.scroll = 0
	}
	if g.hurt > 0 {
		g.hurt--
	}
}

// collide resolves every hit of this frame before removing anything.
func (g *Game) collide() {
	center := (*entity.Body).Center

	bossHits := entity.PointHits(&g.shots, center, g.boss.Box())
	shipHits := entity.PointHits(&g.bossShots, center, g.ship.Box())

	g.shots.Remove(bossHits)
	g.bossShots.Remove(shipHits)
	g.shots.RemoveFunc(g.offField)
	g.bossShots.RemoveFunc(g.offField)

	if n := bossHits.Len(); n > 0 {
		g.hits += n
		g.life -= n
		g.score += n * 10
		g.hurt = g.cfg.Boss.HurtTicks
	}

	switch {
	case shipHits.Len() > 0:
		g.latch.Trip(entity.PhaseOver)
	case g.life <= 0:
		g.life = 0
		g.latch.Trip(entity.PhaseWon)
	}
}

func (g *Game) offField(_ entity.ID, b *entity.Body) bool {
	return g.field.Outside(b.Box())
}

// spawn fires the boss's volley when due: an aimed shot, sometimes preceded
// by a five-way spread.
func (g *Game) spawn() {
	if g.latch.Over() {
		return
	}
	g.volley.Period = g.diff.Period(g.cfg.Boss.ShootEvery, g.score, int(g.tick))
	if !g.volley.Tick() {
		return
	}
	if g.rng.Intn(2) == 1 {
		for _, dy := range []float64{0, 1, 2, -1, -2} {
			g.fireBoss(entity.V(-2, dy), g.cfg.Bullets.Speed/2)
		}
	}
	aim := g.ship.Pos.Sub(g.boss.Pos).Normalize()
	g.fireBoss(entity.V(aim.X*3, aim.Y), g.cfg.Bullets.Speed/3)
}

func (g *Game) fireBoss(dir entity.Vec, speed float64) {
	size := g.cfg.Bullets.Size
	g.bossShots.Add(entity.Body{
		Pos:    entity.V(g.boss.Pos.X-1-size, g.boss.Center().Y-size/2),
		Dir:    dir,
		Speed:  speed,
		W:      size,
		H:      size,
		Sprite: g.sheet.Handle("boss_shot.txt"),
	})
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	for _, s := range g.stars {
		x := int(s.X-g.scroll+g.field.W) % max(int(g.field.W), 1)
		dst.SetColor(x, hudHeight+int(s.Y), '.', core.ColorGray)
	}

	g.draw(dst, &g.ship, g.sprite("ship.txt"), core.ColorCyan)
	if g.hurt > 0 {
		g.draw(dst, &g.boss, g.sprite("boss_hurt.txt"), core.ColorRed)
	} else {
		g.draw(dst, &g.boss, g.sprite("boss.txt"), core.ColorMagenta)
	}
	for _, b := range g.shots.All() {
		g.draw(dst, b, g.sprite("shot.txt"), core.ColorYellow)
	}
	for _, b := range g.bossShots.All() {
		g.draw(dst, b, g.sprite("boss_shot.txt"), core.ColorOrange)
	}

	switch {
	case g.latch.Won():
		dst.DrawOverlay("YOU WIN", fmt.Sprintf("Score: %d", g.score))
	case g.latch.Over():
		dst.DrawOverlay("GAME OVER", "Press R to restart")
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (g *Game) draw(dst *core.Screen, b *entity.Body, rows []string, c core.Color) {
	x, y := b.Pos.Cell()
	dst.DrawSprite(x, hudHeight+y, rows, c)
}

// renderHUD draws the boss life bar.
func (g *Game) renderHUD(dst *core.Screen) {
	label := fmt.Sprintf(" Boss %d/%d  Score %d ", g.life, g.cfg.Boss.Life, g.score)
	dst.DrawTextColor(0, 0, label, core.ColorYellow)

	barW := dst.Width() - len(label) - 1
	if barW > 0 && g.cfg.Boss.Life > 0 {
		filled := barW * g.life / g.cfg.Boss.Life
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)
		dst.DrawTextColor(len(label), 0, bar, core.ColorRed)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.latch.Over(),
		Won:      g.latch.Won(),
		Paused:   g.paused,
	}
}
