// Package dino implements a Chrome Dino-style endless runner game.
// The player must jump over obstacles while running automatically.
package dino

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
	CactusChar = '▓'
	GroundChar = '═'
	PebbleChar = '.'
)

const (
	skin        = 0.01 // Hitbox inset so adjacent cells do not touch
	legCycle    = 10   // Ticks per running animation cycle
	pebbleEvery = 7
)

var sprites = map[string][]string{
	"dino_run1.txt": {" ◆█", "███", "╱ ╲"},
	"dino_run2.txt": {" ◆█", "███", " ╱╲"},
	"dino_jump.txt": {" ◆█", "███", "╱╲ "},
}

// Game implements the Dino Runner game logic.
type Game struct {
	cfg     config.DinoConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand
	runtime core.RuntimeConfig
	sheet   *assets.Sheet

	dino     entity.Body // Speed carries the signed vertical velocity
	grounded bool
	cacti    entity.List[entity.Body]
	spawn    entity.Spawner
	groundY  float64 // Row of the ground line
	width    float64
	scroll   float64
	score    int
	tick     int
	legFrame int
	latch    entity.Latch
	paused   bool
}

// New creates a new Dino Runner game instance.
func New() *Game {
	g := &Game{cfg: config.DefaultDinoConfig()}
	g.UseAssets(nil) //nolint:errcheck // Fallbacks never fail
	return g
}

func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "dino" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Dino Runner" }

// Configure loads the YAML tuning.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadDino(path)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	return nil
}

// UseAssets resolves the dino frames.
func (g *Game) UseAssets(store *assets.Store) error {
	g.sheet = assets.NewSheet(store, sprites)
	return nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.runtime = cfg
	g.groundY = float64(max(cfg.ScreenH-g.cfg.Player.GroundOffset, g.cfg.Player.Height+1))
	g.width = float64(cfg.ScreenW)
	g.scroll = 0
	g.score = 0
	g.tick = 0
	g.legFrame = 0
	g.paused = false
	g.latch.Reset()
	g.cacti.Clear()

	pc := g.cfg.Player
	g.dino = entity.Body{
		Pos:    entity.V(float64(pc.X), g.groundY-float64(pc.Height)),
		Dir:    entity.V(0, 1),
		W:      float64(pc.Width),
		H:      float64(pc.Height),
		Sprite: g.sheet.Handle("dino_run1.txt"),
	}
	g.grounded = true
	g.spawn = entity.NewSpawner(g.nextGap())
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
	g.legFrame = (g.legFrame + 1) % legCycle

	// Jump only from the ground
	if (in.Has(core.ActionFire) || in.Has(core.ActionUp)) && g.grounded {
		g.dino.Speed = g.cfg.Physics.JumpImpulse
		g.grounded = false
	}
	g.fall()

	speed := g.speed()
	for _, c := range g.cacti.All() {
		c.Speed = speed
		entity.Step(c, 1)
	}
	g.cacti.RemoveFunc(func(_ entity.ID, c *entity.Body) bool {
		return c.Box().Right() < 0
	})
	g.scroll += speed

	// Score is distance travelled
	g.score++

	hit := g.hitbox()
	for _, c := range g.cacti.All() {
		if entity.Overlaps(hit, c.Box()) {
			g.latch.Trip(entity.PhaseOver)
			break
		}
	}

	if g.spawn.Tick() {
		g.spawnCactus()
		g.spawn.Period = g.nextGap()
	}

	return core.StepResult{State: g.State()}
}

// fall applies gravity while airborne and lands the dino on the ground.
func (g *Game) fall() {
	if g.grounded {
		return
	}
	g.dino.Speed = min(g.dino.Speed+g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)
	entity.Step(&g.dino, 1)

	if g.dino.Box().Bottom() >= g.groundY {
		g.dino.Pos.Y = g.groundY - g.dino.H
		g.dino.Speed = 0
		g.grounded = true
	}
}

func (g *Game) speed() float64 {
	return g.diff.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tick)
}

// nextGap picks the ticks until the next cactus from the configured
// choices, shortened by difficulty.
func (g *Game) nextGap() int {
	choices := g.cfg.Obstacles.SpawnEvery
	if len(choices) == 0 {
		return 0
	}
	return g.diff.Period(choices[g.rng.Intn(len(choices))], g.score, g.tick)
}

// spawnCactus adds a cactus of random size at the right edge.
func (g *Game) spawnCactus() {
	oc := g.cfg.Obstacles
	w := oc.MinWidth + g.rng.Intn(max(oc.MaxWidth-oc.MinWidth, 0)+1)
	h := oc.MinHeight + g.rng.Intn(max(oc.MaxHeight-oc.MinHeight, 0)+1)
	g.cacti.Add(entity.Body{
		Pos: entity.V(g.width, g.groundY-float64(h)),
		Dir: entity.V(-1, 0),
		W:   float64(w),
		H:   float64(h),
	})
}

// hitbox returns the dino's box shrunk by skin on every side.
func (g *Game) hitbox() entity.Box {
	b := g.dino.Box()
	return entity.Box{X: b.X + skin, Y: b.Y + skin, W: b.W - 2*skin, H: b.H - 2*skin}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	ground := int(g.groundY)
	dst.DrawHLine(0, ground, dst.Width(), GroundChar)
	offset := int(g.scroll)
	for x := 0; x < dst.Width(); x++ {
		if (x+offset)%pebbleEvery == 0 {
			dst.SetColor(x, ground+1, PebbleChar, core.ColorGray)
		}
	}

	for _, c := range g.cacti.All() {
		x, y := c.Pos.Cell()
		dst.DrawRect(core.NewRect(x, y, int(c.W), int(c.H)), CactusChar, core.ColorGreen)
	}

	x, y := g.dino.Pos.Cell()
	dst.DrawSprite(x, y, g.sheet.Sprite(g.frame()), core.ColorWhite)

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

// frame picks the sprite for the current animation state.
func (g *Game) frame() string {
	switch {
	case !g.grounded:
		return "dino_jump.txt"
	case g.legFrame < legCycle/2:
		return "dino_run1.txt"
	default:
		return "dino_run2.txt"
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
	Dino  entity.Vec
	Cacti int
	Over  bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Dino:  g.dino.Pos,
		Cacti: g.cacti.Len(),
		Over:  g.latch.Over(),
	}
}
