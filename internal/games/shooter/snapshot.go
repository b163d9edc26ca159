package shooter

import "github.com/vovakirdan/toybox/internal/entity"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	Life      int
	Hits      int
	Hurt      bool
	Ship      entity.Vec
	Boss      entity.Vec
	Shots     int
	BossShots int
	Phase     entity.Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Life:      g.life,
		Hits:      g.hits,
		Hurt:      g.hurt > 0,
		Ship:      g.ship.Pos,
		Boss:      g.boss.Pos,
		Shots:     g.shots.Len(),
		BossShots: g.bossShots.Len(),
		Phase:     g.latch.Phase(),
	}
}
