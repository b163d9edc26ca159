package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionFire)

	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionFire))
	assert.False(t, f.Has(ActionRight))

	c := f.Clone()
	f.Clear()
	assert.True(t, f.Empty())
	assert.True(t, c.Has(ActionFire), "clone must not share storage")
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	assert.False(t, f.Has(ActionUp))

	f.Set(ActionUp)
	assert.True(t, f.Has(ActionUp))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Fire", ActionFire.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestTickSeconds(t *testing.T) {
	assert.InDelta(t, 1.0/30, RuntimeConfig{TickRate: 30}.TickSeconds(), 1e-9)
	assert.InDelta(t, 1.0/60, RuntimeConfig{}.TickSeconds(), 1e-9)
}
