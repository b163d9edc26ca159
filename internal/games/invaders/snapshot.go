package invaders

import "github.com/vovakirdan/toybox/internal/entity"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	Kills    int
	Wave     int
	Ship     entity.Vec
	Bullets  int
	Invaders int
	Phase    entity.Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Kills:    g.kills,
		Wave:     g.wave,
		Ship:     g.ship.Pos,
		Bullets:  g.bullets.Len(),
		Invaders: g.invaders.Len(),
		Phase:    g.latch.Phase(),
	}
}
