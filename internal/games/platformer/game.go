// Package platformer is a side-scrolling platformer: run and jump across a
// tile map, stomp walkers from above and reach the flag.
package platformer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const (
	hudHeight = 1
	skin      = 0.01
	bounce    = 0.5 // Fraction of the jump speed kept after a stomp
)

var sprites = map[string][]string{
	"hero.txt":   {"M"},
	"walker.txt": {"ö"},
}

// actor is anything subject to gravity and tile collisions. Dir.X is the
// walking direction.
type actor struct {
	entity.Body
	vy       float64
	onGround bool
}

// Game implements the platformer.
type Game struct {
	cfg     config.PlatformerConfig
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    uint64
	dt      float64
	sheet   *assets.Sheet

	level   *level
	player  actor
	enemies entity.List[actor]
	stomped int
	score   int
	camera  int
	latch   entity.Latch
	paused  bool
}

// New creates a platformer on the built-in level.
func New() *Game {
	g := &Game{cfg: config.DefaultPlatformerConfig()}
	if err := g.loadLevel(builtinLevel); err != nil {
		panic(err)
	}
	g.sheet = assets.NewSheet(nil, sprites)
	return g
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "platformer" }

// Title returns the display name.
func (g *Game) Title() string { return "Platformer" }

// Configure loads the YAML tuning. There is no difficulty progression.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.LoadPlatformer(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// UseAssets resolves the sprites and the level. A level named in the
// config must be in the store.
func (g *Game) UseAssets(store *assets.Store) error {
	g.sheet = assets.NewSheet(store, sprites)
	if g.cfg.Level == "" {
		return g.loadLevel(builtinLevel)
	}
	if store == nil {
		return errors.New("platformer: level: no asset store")
	}
	h, err := store.Lookup(g.cfg.Level)
	if err != nil {
		return fmt.Errorf("platformer: level: %w", err)
	}
	rows, err := store.Board(h)
	if err != nil {
		return fmt.Errorf("platformer: level: %w", err)
	}
	return g.loadLevel(rows)
}

func (g *Game) loadLevel(rows []string) error {
	l, err := parseLevel(rows)
	if err != nil {
		return fmt.Errorf("platformer: level: %w", err)
	}
	g.level = l
	return nil
}

// Reset initializes/restarts the level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runtime = cfg
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.stomped = 0
	g.score = 0
	g.camera = 0
	g.paused = false
	g.latch.Reset()

	g.player = actor{Body: entity.Body{
		Pos:    g.level.start,
		Speed:  g.cfg.RunSpeed,
		W:      1,
		H:      1,
		Sprite: g.sheet.Handle("hero.txt"),
	}}

	g.enemies.Clear()
	for _, p := range g.level.enemies {
		g.enemies.Add(actor{Body: entity.Body{
			Pos:    p,
			Dir:    entity.V(-1, 0),
			Speed:  g.cfg.EnemySpeed,
			W:      1,
			H:      1,
			Sprite: g.sheet.Handle("walker.txt"),
		}})
	}
	g.follow()
}

// Step advances the game by one tick: run and jump, walkers, stomps,
// flag and pits.
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

	g.run(input)
	g.walk()
	g.interact()

	switch {
	case g.level.touches(g.player.Box(), tileFlag):
		g.score += g.cfg.FlagPoints
		g.latch.Trip(entity.PhaseWon)
	case g.player.Pos.Y > float64(g.level.h):
		g.latch.Trip(entity.PhaseOver)
	}
	g.follow()

	return core.StepResult{State: g.State()}
}

// run moves the player from input. Jumping needs solid ground underfoot.
func (g *Game) run(input core.InputFrame) {
	p := &g.player
	p.Dir.X = 0
	if input.Has(core.ActionLeft) {
		p.Dir.X--
	}
	if input.Has(core.ActionRight) {
		p.Dir.X++
	}
	if (input.Has(core.ActionFire) || input.Has(core.ActionUp)) && p.onGround {
		p.vy = -g.cfg.JumpSpeed
	}
	g.moveX(p, p.Dir.X*p.Speed*g.dt)
	g.fall(p)
}

// walk moves every walker, turning it around at walls. Walkers that fell
// out of the map are dropped.
func (g *Game) walk() {
	for _, e := range g.enemies.All() {
		if g.moveX(e, e.Dir.X*e.Speed*g.dt) {
			e.Dir.X = -e.Dir.X
		}
		g.fall(e)
	}
	g.enemies.RemoveFunc(func(_ entity.ID, e *actor) bool {
		return e.Pos.Y > float64(g.level.h)
	})
}

// interact resolves player-walker contact. Landing with the feet inside a
// walker stomps it; any other contact ends the run.
func (g *Game) interact() {
	p := &g.player
	feet := entity.V(p.Pos.X+p.W/2, p.Box().Bottom())
	b := p.Box()
	hit := entity.Box{X: b.X + skin, Y: b.Y + skin, W: b.W - 2*skin, H: b.H - 2*skin}

	var stomped entity.Set
	for id, e := range g.enemies.All() {
		switch {
		case p.vy > 0 && e.Box().Contains(feet):
			stomped.Add(id)
		case entity.Overlaps(hit, e.Box()):
			g.latch.Trip(entity.PhaseOver)
			return
		}
	}
	if n := g.enemies.Remove(stomped); n > 0 {
		g.stomped += n
		g.score += n * g.cfg.StompPoints
		p.vy = -g.cfg.JumpSpeed * bounce
	}
}

// moveX moves a horizontally and backs it out of any wall it entered.
// It reports whether a wall was hit.
func (g *Game) moveX(a *actor, dx float64) bool {
	if dx == 0 {
		return false
	}
	a.Pos.X += dx
	if !g.level.blocked(a.Box()) {
		return false
	}
	if dx > 0 {
		a.Pos.X = math.Floor(a.Pos.X+a.W) - a.W
	} else {
		a.Pos.X = math.Floor(a.Pos.X) + 1
	}
	return true
}

// fall applies gravity and lands a on floors or stops it at ceilings.
func (g *Game) fall(a *actor) {
	a.vy = min(a.vy+g.cfg.Gravity*g.dt, g.cfg.MaxFallSpeed)
	a.onGround = false
	dy := a.vy * g.dt
	if dy == 0 {
		return
	}
	a.Pos.Y += dy
	if !g.level.blocked(a.Box()) {
		return
	}
	if dy > 0 {
		a.Pos.Y = math.Floor(a.Pos.Y+a.H) - a.H
		a.onGround = true
	} else {
		a.Pos.Y = math.Floor(a.Pos.Y) + 1
	}
	a.vy = 0
}

// follow keeps the player in the left third of the view.
func (g *Game) follow() {
	w := g.runtime.ScreenW
	x, _ := g.player.Pos.Cell()
	g.camera = core.Clamp(x-w/3, 0, max(g.level.w-w, 0))
}

// Render draws the visible slice of the level, bottom-aligned.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	top := dst.Height() - g.level.h

	for y := 0; y < g.level.h; y++ {
		for x := 0; x < dst.Width(); x++ {
			r, c := tileGlyph(g.level, g.camera+x, y)
			if r != ' ' {
				dst.SetColor(x, top+y, r, c)
			}
		}
	}

	for _, e := range g.enemies.All() {
		g.draw(dst, &e.Body, top, core.ColorRed)
	}
	g.draw(dst, &g.player.Body, top, core.ColorCyan)

	dst.DrawText(0, 0, fmt.Sprintf(" Platformer  Score: %d  Stomped: %d", g.score, g.stomped))

	switch {
	case g.latch.Won():
		dst.DrawOverlay("COURSE CLEAR", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.latch.Over():
		dst.DrawOverlay("GAME OVER", "Press R to restart")
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

func (g *Game) draw(dst *core.Screen, b *entity.Body, top int, c core.Color) {
	x, y := b.Pos.Cell()
	dst.DrawSprite(x-g.camera, top+y, g.sheet.Rows(b.Sprite), c)
}

// tileGlyph maps a tile to what is drawn for it.
func tileGlyph(l *level, x, y int) (rune, core.Color) {
	if x >= l.w {
		return ' ', core.ColorDefault
	}
	switch l.at(x, y) {
	case tileGround:
		return '█', core.ColorOrange
	case tilePlatform:
		return '▀', core.ColorOrange
	case tileBlock:
		return '?', core.ColorYellow
	case tileFlag:
		if l.at(x, y-1) != tileFlag {
			return '►', core.ColorGreen
		}
		return '│', core.ColorWhite
	default:
		return ' ', core.ColorDefault
	}
}

// State returns the current state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.latch.Over(),
		Won:      g.latch.Won(),
		Paused:   g.paused,
	}
}

// Snapshot captures the platformer state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Score   int
	Player  entity.Vec
	Enemies int
	Phase   entity.Phase
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Player:  g.player.Pos,
		Enemies: g.enemies.Len(),
		Phase:   g.latch.Phase(),
	}
}
