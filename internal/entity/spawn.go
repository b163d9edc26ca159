package entity

import "math/rand"

// Spawner fires once every Period ticks.
// It is a fixed-period scheduler: no jitter, no catch-up.
type Spawner struct {
	Period int
	count  int
}

// NewSpawner creates a spawner that fires every period ticks.
func NewSpawner(period int) Spawner {
	return Spawner{Period: period}
}

// Tick advances the counter and reports whether a spawn is due.
// A non-positive period never fires.
func (s *Spawner) Tick() bool {
	if s.Period <= 0 {
		return false
	}
	s.count++
	if s.count >= s.Period {
		s.count = 0
		return true
	}
	return false
}

// Count returns the ticks elapsed since the last spawn.
func (s *Spawner) Count() int {
	return s.count
}

// Reset restarts the period.
func (s *Spawner) Reset() {
	s.count = 0
}

// Accumulator gates an action on elapsed time instead of a wall clock.
type Accumulator struct {
	Period  float64
	elapsed float64
}

// NewAccumulator creates an accumulator that fires every period units.
func NewAccumulator(period float64) Accumulator {
	return Accumulator{Period: period}
}

// Add accumulates dt and reports whether the period has been reached.
// The accumulator restarts from zero when it fires.
func (a *Accumulator) Add(dt float64) bool {
	a.elapsed += dt
	if a.elapsed >= a.Period {
		a.elapsed = 0
		return true
	}
	return false
}

// Reset restarts the accumulator.
func (a *Accumulator) Reset() {
	a.elapsed = 0
}

// RandomPoint samples a uniform position for a w*h body fully inside field.
func RandomPoint(rng *rand.Rand, field Bounds, w, h float64) Vec {
	return Vec{
		X: rng.Float64() * max(field.W-w, 0),
		Y: rng.Float64() * max(field.H-h, 0),
	}
}

// RandomCell samples a uniform grid cell in [0, cols) x [0, rows).
func RandomCell(rng *rand.Rand, cols, rows int) (int, int) {
	return rng.Intn(max(cols, 1)), rng.Intn(max(rows, 1))
}

// RandomSign returns -1 or 1 with equal probability.
func RandomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
