// Package gallery is a shooting gallery: a cannon in the bottom-left corner
// lobs shots at bins patrolling along the floor. A shot scores when it
// drops into a bin.
package gallery

import (
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
	maxAngle  = 90
	aimDots   = 3
	aspect    = 2 // Terminal cells are about twice as tall as wide
)

var sprites = map[string][]string{
	"bin.txt":  {"|   |", "|   |", "\\___/"},
	"shot.txt": {"o"},
}

// bin is a patrolling target. Its body lives in lane coordinates, where
// x=0 is the configured min_x.
type bin struct {
	entity.Body
	age int
}

// Game implements the gallery.
type Game struct {
	cfg     config.GalleryConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    int
	sheet   *assets.Sheet

	field  entity.Bounds
	lane   entity.Bounds
	angle  float64 // Degrees above the horizon
	origin entity.Vec
	shots  entity.List[entity.Body] // Dir carries the velocity, Speed stays 1
	bins   entity.List[bin]
	spawn  entity.Spawner
	ammo   int
	fired  int
	score  int
	latch  entity.Latch
	paused bool
}

// New creates a gallery with default tuning.
func New() *Game {
	g := &Game{cfg: config.DefaultGalleryConfig()}
	g.UseAssets(nil) //nolint:errcheck // Fallbacks never fail
	return g
}

func init() {
	registry.Register("gallery", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "gallery" }

// Title returns the display name.
func (g *Game) Title() string { return "Shooting Gallery" }

// Configure loads the YAML tuning.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadGallery(path)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	return nil
}

// UseAssets resolves the bin and shot sprites.
func (g *Game) UseAssets(store *assets.Store) error {
	g.sheet = assets.NewSheet(store, sprites)
	return nil
}

// Reset initializes/restarts the game with one bin at the near end of
// the lane.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.runtime = cfg
	g.tick = 0
	g.fired = 0
	g.score = 0
	g.ammo = g.cfg.Cannon.Ammo
	g.paused = false
	g.latch.Reset()
	g.shots.Clear()
	g.bins.Clear()

	g.field = entity.Bounds{W: float64(cfg.ScreenW), H: float64(max(cfg.ScreenH-hudHeight, 1))}
	minX := min(g.cfg.Targets.MinX, max(g.field.W-float64(g.cfg.Targets.Width), 0))
	g.lane = entity.Bounds{W: g.field.W - minX, H: g.field.H}
	g.angle = core.ClampF(g.cfg.Cannon.Angle, 0, maxAngle)
	g.origin = entity.V(1, g.field.H-1)
	g.spawn = entity.NewSpawner(g.cfg.Targets.SpawnEvery)

	g.addBin(0, 1)
}

// laneX returns the field x of the lane origin.
func (g *Game) laneX() float64 {
	return g.field.W - g.lane.W
}

// Step advances the game by one tick: aim, fly, score, spawn.
func (g *Game) Step(input core.InputFrame) core.StepResult {
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
	g.tick++

	g.aim(input)
	g.fly()
	g.patrol()
	g.score += g.catch()

	g.spawn.Period = g.diff.Period(g.cfg.Targets.SpawnEvery, g.score, g.tick)
	if g.spawn.Tick() && (g.cfg.Targets.MaxAlive <= 0 || g.bins.Len() < g.cfg.Targets.MaxAlive) {
		g.addBin(g.rng.Float64()*max(g.lane.W-float64(g.cfg.Targets.Width), 0), entity.RandomSign(g.rng))
	}

	if g.cfg.Cannon.Ammo > 0 && g.ammo == 0 && g.shots.Len() == 0 {
		g.latch.Trip(entity.PhaseOver)
	}

	return core.StepResult{State: g.State()}
}

// aim turns the cannon and fires. Left raises the barrel, right lowers it.
func (g *Game) aim(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.angle += g.cfg.Cannon.TurnSpeed
	}
	if input.Has(core.ActionRight) {
		g.angle -= g.cfg.Cannon.TurnSpeed
	}
	g.angle = core.ClampF(g.angle, 0, maxAngle)

	if !input.Has(core.ActionFire) {
		return
	}
	if g.cfg.Cannon.Ammo > 0 {
		if g.ammo == 0 {
			return
		}
		g.ammo--
	}
	g.fired++
	g.shots.Add(entity.Body{
		Pos:    g.origin,
		Dir:    g.heading().Scale(g.cfg.Cannon.Power),
		Speed:  1,
		W:      1,
		H:      1,
		Sprite: g.sheet.Handle("shot.txt"),
	})
}

// heading returns the unit barrel direction in field coordinates.
func (g *Game) heading() entity.Vec {
	rad := g.angle * math.Pi / 180
	return entity.V(math.Cos(rad), -math.Sin(rad))
}

// fly applies drag and gravity, moves shots and drops the ones that left
// through the floor or the right wall. Shots above the top come back down.
func (g *Game) fly() {
	ph := g.cfg.Physics
	for _, s := range g.shots.All() {
		s.Dir.X *= ph.Resistance
		s.Dir.Y = (s.Dir.Y + ph.Gravity) * ph.Resistance
		entity.Step(s, 1)
	}
	g.shots.RemoveFunc(func(_ entity.ID, s *entity.Body) bool {
		return s.Pos.Y > g.field.H || s.Pos.X > g.field.W || s.Box().Right() < 0
	})
}

// patrol walks every bin along the lane, turning at its ends, and retires
// bins that outlived their lifetime.
func (g *Game) patrol() {
	speed := g.diff.Speed(g.cfg.Targets.Speed, g.score, g.tick)
	for _, b := range g.bins.All() {
		b.Speed = speed
		entity.Advance(&b.Body, 1, g.lane, entity.EdgeReflect)
		b.age++
	}
	if life := g.cfg.Targets.Lifetime; life > 0 {
		g.bins.RemoveFunc(func(_ entity.ID, b *bin) bool { return b.age >= life })
	}
}

// catch removes every shot whose bottom-center lies inside a bin and
// returns how many were caught.
func (g *Game) catch() int {
	var caught entity.Set
	for _, b := range g.bins.All() {
		caught.Merge(entity.PointHits(&g.shots, bottomCenter, g.binBox(b)))
	}
	return g.shots.Remove(caught)
}

func bottomCenter(s *entity.Body) entity.Vec {
	return entity.V(s.Pos.X+s.W/2, s.Box().Bottom())
}

// binBox returns a bin's box in field coordinates.
func (g *Game) binBox(b *bin) entity.Box {
	box := b.Box()
	box.X += g.laneX()
	return box
}

func (g *Game) addBin(x, dir float64) {
	tc := g.cfg.Targets
	g.bins.Add(bin{Body: entity.Body{
		Pos:    entity.V(x, g.field.H-float64(tc.Height)),
		Dir:    entity.V(dir, 0),
		Speed:  tc.Speed,
		W:      float64(tc.Width),
		H:      float64(tc.Height),
		Sprite: g.sheet.Handle("bin.txt"),
	}})
}

// Render draws the cannon with its aim, the shots and the bins.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	ammo := "∞"
	if g.cfg.Cannon.Ammo > 0 {
		ammo = fmt.Sprint(g.ammo)
	}
	dst.DrawText(0, 0, fmt.Sprintf(" Gallery  Score: %d  Angle: %.0f°  Ammo: %s", g.score, g.angle, ammo))

	ox, oy := g.origin.Cell()
	h := g.heading()
	for k := 1; k <= aimDots; k++ {
		p := g.origin.Add(entity.V(h.X*aspect, h.Y).Scale(float64(k)))
		x, y := p.Cell()
		dst.SetColor(x, hudHeight+y, '·', core.ColorGray)
	}
	dst.SetColor(ox, hudHeight+oy, '▲', core.ColorOrange)

	for _, b := range g.bins.All() {
		box := g.binBox(b)
		x, y := entity.V(box.X, box.Y).Cell()
		dst.DrawSprite(x, hudHeight+y, g.sheet.Rows(b.Sprite), core.ColorGreen)
	}
	for _, s := range g.shots.All() {
		x, y := s.Pos.Cell()
		dst.DrawSprite(x, hudHeight+y, g.sheet.Rows(s.Sprite), core.ColorYellow)
	}

	switch {
	case g.latch.Over():
		dst.DrawOverlay("OUT OF AMMO", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.latch.Over(), Paused: g.paused}
}

// Snapshot captures the gallery state for determinism tests.
type Snapshot struct {
	Tick  int
	Score int
	Fired int
	Shots int
	Bins  int
	Angle float64
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Fired: g.fired,
		Shots: g.shots.Len(),
		Bins:  g.bins.Len(),
		Angle: g.angle,
	}
}
