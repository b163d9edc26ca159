// Package particles is a particle fountain: bursts of particles leave the
// center in random directions, bounce off the field edges and fade out.
package particles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

const hudHeight = 1

var colors = []core.Color{core.ColorMagenta, core.ColorGreen, core.ColorYellow, core.ColorWhite}

type particle struct {
	body  entity.Body
	age   float64
	color core.Color
}

// Game implements the particle fountain. It never ends.
type Game struct {
	cfg     config.ParticlesConfig
	rng     *rand.Rand
	runtime core.RuntimeConfig
	tick    uint64
	dt      float64

	field     entity.Bounds
	particles entity.List[particle]
	burst     entity.Spawner
	spawned   int
	expired   int
	paused    bool
}

// New creates a fountain with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultParticlesConfig()}
}

func init() {
	registry.Register("particles", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "particles" }

// Title returns the display name.
func (g *Game) Title() string { return "Particle Fountain" }

// Configure loads the YAML tuning. Difficulty presets do not apply.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.LoadParticles(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset initializes/restarts the fountain.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runtime = cfg
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.spawned = 0
	g.expired = 0
	g.paused = false
	g.field = entity.Bounds{W: float64(cfg.ScreenW), H: float64(max(cfg.ScreenH-hudHeight, 1))}
	g.particles.Clear()
	g.burst = entity.NewSpawner(g.cfg.SpawnEvery)
}

// Step moves, expires and spawns particles.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, p := range g.particles.All() {
		entity.Advance(&p.body, g.dt, g.field, g.cfg.Edge)
		p.age += g.dt
	}

	g.expired += g.particles.RemoveFunc(func(_ entity.ID, p *particle) bool {
		return p.age >= g.cfg.Lifetime || (g.cfg.Edge == entity.EdgeNone && g.field.Outside(p.body.Box()))
	})

	if g.burst.Tick() || input.Has(core.ActionFire) {
		g.spawnBurst()
	}

	return core.StepResult{State: g.State()}
}

// spawnBurst adds up to PerSpawn particles at the center, capped at MaxAlive.
func (g *Game) spawnBurst() {
	n := g.cfg.PerSpawn
	if g.cfg.MaxAlive > 0 {
		n = min(n, g.cfg.MaxAlive-g.particles.Len())
	}
	center := entity.V(g.field.W/2, g.field.H/2)
	for range n {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := g.cfg.MinSpeed + g.rng.Float64()*max(g.cfg.MaxSpeed-g.cfg.MinSpeed, 0)
		g.particles.Add(particle{
			body: entity.Body{
				Pos:   center,
				Dir:   entity.V(math.Cos(angle), math.Sin(angle)),
				Speed: speed,
				W:     1,
				H:     1,
			},
			color: colors[g.rng.Intn(len(colors))],
		})
		g.spawned++
	}
}

// Render draws particles, dimming them as they age.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, fmt.Sprintf(" Particles  Alive: %d  Spawned: %d  Edge: %s", g.particles.Len(), g.spawned, g.cfg.Edge))

	for _, p := range g.particles.All() {
		x, y := p.body.Pos.Cell()
		r := '*'
		if g.cfg.Lifetime > 0 && p.age > g.cfg.Lifetime/2 {
			r = '.'
		}
		dst.SetColor(x, hudHeight+y, r, p.color)
	}
	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// State returns the current state. Score is the number of live particles.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.particles.Len(), Paused: g.paused}
}

// Snapshot captures the fountain state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Alive   int
	Spawned int
	Expired int
	First   entity.Vec
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Tick: g.tick, Alive: g.particles.Len(), Spawned: g.spawned, Expired: g.expired}
	if g.particles.Len() > 0 {
		_, p := g.particles.At(0)
		s.First = p.body.Pos
	}
	return s
}
