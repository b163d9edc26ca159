// Package snake implements grid Snake on a wrapping (or walled) board.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/config"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
	"github.com/vovakirdan/toybox/internal/registry"
)

// Point is a board cell.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Directions, in board cells per move.
var (
	DirUp    = Point{0, -1}
	DirDown  = Point{0, 1}
	DirLeft  = Point{-1, 0}
	DirRight = Point{1, 0}
)

const hudHeight = 2

// Game implements Snake.
type Game struct {
	cfg  config.SnakeConfig
	diff *config.DifficultyManager
	rng  *rand.Rand
	tick uint64
	dt   float64

	score int
	move  entity.Accumulator
	latch entity.Latch

	snake   []Point // Head at index 0
	dir     Point
	nextDir Point
	food    Point
	hasFood bool

	board  entity.Bounds
	layout []string
	walls  map[Point]bool

	runtime core.RuntimeConfig
	paused  bool
}

// New creates a Snake game with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultSnakeConfig()}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Configure loads the YAML tuning.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	return nil
}

// UseAssets loads the optional board layout. A layout named in the config
// but absent from the store is an error.
func (g *Game) UseAssets(store *assets.Store) error {
	g.layout = nil
	if g.cfg.Board.Layout == "" {
		return nil
	}
	h, err := store.Lookup(g.cfg.Board.Layout)
	if err != nil {
		return fmt.Errorf("snake: layout: %w", err)
	}
	rows, err := store.Board(h)
	if err != nil {
		return fmt.Errorf("snake: layout: %w", err)
	}
	g.layout = rows
	return nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.score = 0
	g.paused = false
	g.latch.Reset()
	g.runtime = cfg
	g.move = entity.NewAccumulator(g.cfg.MoveEvery)

	g.loadBoard()
	g.initSnake()
	g.spawnFood()
}

// loadBoard sizes the board from the config, the layout or the screen.
func (g *Game) loadBoard() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	g.walls = make(map[Point]bool)
	if len(g.layout) > 0 {
		h = len(g.layout)
		w = 0
		for y, row := range g.layout {
			x := 0
			for _, ch := range row {
				if ch == '#' {
					g.walls[Point{x, y}] = true
				}
				x++
			}
			w = max(w, x)
		}
	}
	if w <= 0 {
		w = g.runtime.ScreenW
	}
	if h <= 0 {
		h = g.runtime.ScreenH - hudHeight
	}
	g.board = entity.Bounds{W: float64(max(w, 1)), H: float64(max(h, 1))}
}

func (g *Game) cols() int { return int(g.board.W) }
func (g *Game) rows() int { return int(g.board.H) }

// initSnake places the snake in the middle row heading right.
func (g *Game) initSnake() {
	g.snake = g.snake[:0]
	n := max(g.cfg.StartLen, 1)
	y := g.rows() / 2
	x := g.cols() / 4
	for range 100 {
		if g.free(Point{x, y}) {
			break
		}
		x, y = entity.RandomCell(g.rng, g.cols(), g.rows())
	}
	for i := range n {
		g.snake = append(g.snake, g.wrap(Point{x - i, y}))
	}
	g.dir = DirRight
	g.nextDir = DirRight
}

func (g *Game) free(p Point) bool {
	if g.walls[p] {
		return false
	}
	for _, seg := range g.snake {
		if seg == p {
			return false
		}
	}
	return true
}

// spawnFood samples a free cell inside the board. A full board wins.
func (g *Game) spawnFood() {
	for range 32 {
		x, y := entity.RandomCell(g.rng, g.cols(), g.rows())
		if p := (Point{x, y}); g.free(p) {
			g.food, g.hasFood = p, true
			return
		}
	}

	// Crowded board: pick uniformly among the free cells.
	var empty []Point
	for y := range g.rows() {
		for x := range g.cols() {
			if p := (Point{x, y}); g.free(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.hasFood = false
		g.latch.Trip(entity.PhaseWon)
		return
	}
	g.food, g.hasFood = empty[g.rng.Intn(len(empty))], true
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

	g.processInput(input)

	g.move.Period = g.cfg.MoveEvery / g.diff.Speed(1, g.score, int(g.tick))
	if g.move.Add(g.dt) {
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a direction change for the next move.
// Reversing onto the body is rejected.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir
	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}
	if newDir.Add(g.dir) != (Point{}) || len(g.snake) == 1 {
		g.nextDir = newDir
	}
}

// next computes the head's next cell through the board's edge policy.
// ok is false when the head leaves a walled board.
func (g *Game) next() (Point, bool) {
	head := g.snake[0]
	b := entity.Body{
		Pos:   entity.V(float64(head.X), float64(head.Y)),
		Dir:   entity.V(float64(g.dir.X), float64(g.dir.Y)),
		Speed: 1,
		W:     1,
		H:     1,
	}
	edge := g.cfg.Board.Edge
	if edge != entity.EdgeWrap {
		edge = entity.EdgeNone
	}
	entity.Advance(&b, 1, g.board, edge)
	x, y := b.Pos.Cell()
	p := Point{x, y}
	return p, x >= 0 && x < g.cols() && y >= 0 && y < g.rows()
}

func (g *Game) wrap(p Point) Point {
	return Point{(p.X%g.cols() + g.cols()) % g.cols(), (p.Y%g.rows() + g.rows()) % g.rows()}
}

// moveSnake moves the snake one cell. Eating on the new head grows the
// snake by one; hitting a wall or the body ends the game.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}
	g.dir = g.nextDir

	head, ok := g.next()
	if !ok || g.walls[head] {
		g.latch.Trip(entity.PhaseOver)
		return
	}

	eating := g.hasFood && head == g.food

	// The tail moves away this step unless the snake grows.
	body := g.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			g.latch.Trip(entity.PhaseOver)
			return
		}
	}

	g.snake = append(g.snake, Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head
	if !eating {
		g.snake = g.snake[:len(g.snake)-1]
		return
	}

	g.score++
	g.spawnFood()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	for p := range g.walls {
		dst.SetColor(p.X, hudHeight+p.Y, '#', core.ColorGray)
	}
	if g.hasFood {
		dst.SetColor(g.food.X, hudHeight+g.food.Y, '*', core.ColorRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		if i == 0 {
			dst.SetColor(seg.X, hudHeight+seg.Y, 'O', core.ColorGreen)
		} else {
			dst.SetColor(seg.X, hudHeight+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch {
	case g.latch.Won():
		dst.DrawOverlay("Board full!", fmt.Sprintf("Final Score: %d", g.score))
	case g.latch.Over():
		dst.DrawOverlay("Game Over", "Press R to restart")
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
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
