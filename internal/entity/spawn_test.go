package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnerCadence(t *testing.T) {
	for _, period := range []int{1, 2, 7, 60} {
		s := NewSpawner(period)
		var l List[int]

		for i := range period {
			if s.Tick() {
				l.Add(i)
			}
		}
		assert.Equal(t, 1, l.Len(), "period %d", period)

		for range period - 1 {
			assert.False(t, s.Tick())
		}
		assert.True(t, s.Tick(), "second spawn after another full period")
	}
}

func TestSpawnerDisabled(t *testing.T) {
	s := NewSpawner(0)
	for range 100 {
		assert.False(t, s.Tick())
	}
}

func TestAccumulator(t *testing.T) {
	a := NewAccumulator(0.3)

	assert.False(t, a.Add(0.1))
	assert.False(t, a.Add(0.1))
	assert.True(t, a.Add(0.15))
	assert.False(t, a.Add(0.1), "restarts from zero after firing")

	a.Reset()
	assert.True(t, a.Add(1))
}

func TestRandomPointInside(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	field := Bounds{W: 40, H: 20}

	for range 500 {
		p := RandomPoint(rng, field, 4, 2)
		assert.True(t, p.X >= 0 && p.X <= 36)
		assert.True(t, p.Y >= 0 && p.Y <= 18)
	}
}

func TestLatch(t *testing.T) {
	var l Latch
	assert.Equal(t, PhasePlaying, l.Phase())
	assert.False(t, l.Trip(PhasePlaying))

	assert.True(t, l.Trip(PhaseOver))
	assert.True(t, l.Over())
	assert.False(t, l.Trip(PhaseWon), "latch is one-way")
	assert.Equal(t, PhaseOver, l.Phase())

	l.Reset()
	assert.False(t, l.Over())
	assert.True(t, l.Trip(PhaseWon))
	assert.True(t, l.Won())
}
