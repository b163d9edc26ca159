package snake

import "github.com/vovakirdan/toybox/internal/entity"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     Point
	Dir      Point
	Food     Point
	HasFood  bool
	Phase    entity.Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Head:     head,
		Dir:      g.dir,
		Food:     g.food,
		HasFood:  g.hasFood,
		Phase:    g.latch.Phase(),
	}
}
