package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	b := Body{Pos: V(1, 2), Dir: V(1, -1), Speed: 4}
	Step(&b, 0.5)

	assert.Equal(t, V(3, 0), b.Pos)
}

func TestWrapStaysInBounds(t *testing.T) {
	field := Bounds{W: 100, H: 60}
	rng := rand.New(rand.NewSource(7))

	for range 2000 {
		b := Body{
			Pos:   RandomPoint(rng, field, 0, 0),
			Dir:   V(RandomSign(rng), RandomSign(rng)),
			Speed: rng.Float64() * 500,
		}
		Advance(&b, rng.Float64(), field, EdgeWrap)

		require.GreaterOrEqual(t, b.Pos.X, 0.0)
		require.Less(t, b.Pos.X, field.W)
		require.GreaterOrEqual(t, b.Pos.Y, 0.0)
		require.Less(t, b.Pos.Y, field.H)
	}
}

func TestWrapOppositeEdge(t *testing.T) {
	field := Bounds{W: 10, H: 10}
	b := Body{Pos: V(9, 0), Dir: V(1, -1), Speed: 1}

	Advance(&b, 1, field, EdgeWrap)

	assert.Equal(t, V(0, 9), b.Pos)
}

func TestClamp(t *testing.T) {
	field := Bounds{W: 80, H: 24}
	b := Body{Pos: V(75, 1), Dir: V(1, -1), Speed: 10, W: 3, H: 1}

	c := Advance(&b, 1, field, EdgeClamp)

	assert.Equal(t, V(77, 0), b.Pos)
	assert.True(t, c.Has(ContactRight|ContactTop))
	assert.Equal(t, V(1, -1), b.Dir, "clamp keeps direction")
}

func TestReflectAtLeftEdge(t *testing.T) {
	field := Bounds{W: 50, H: 50}
	b := Body{Pos: V(0, 10), Dir: V(-1, 0), Speed: 1}

	c := Advance(&b, 1, field, EdgeReflect)

	assert.Equal(t, 1.0, b.Dir.X)
	assert.GreaterOrEqual(t, b.Pos.X, 0.0)
	assert.True(t, c.Has(ContactLeft))

	Advance(&b, 1, field, EdgeReflect)
	assert.Equal(t, 1.0, b.Pos.X, "moves away after the bounce")
}

func TestReflectBottom(t *testing.T) {
	field := Bounds{W: 50, H: 20}
	b := Body{Pos: V(10, 17), Dir: V(0, 1), Speed: 5, W: 2, H: 2}

	Advance(&b, 1, field, EdgeReflect)

	assert.Equal(t, -1.0, b.Dir.Y)
	assert.Equal(t, 18.0, b.Pos.Y)
}

func TestEdgeNoneOnlyReports(t *testing.T) {
	field := Bounds{W: 10, H: 10}
	b := Body{Pos: V(0, 5), Dir: V(-1, 0), Speed: 3}

	c := Advance(&b, 1, field, EdgeNone)

	assert.Equal(t, -3.0, b.Pos.X)
	assert.True(t, c.Has(ContactLeft))
	assert.True(t, field.Outside(b.Box()))
}

func TestParseEdgePolicy(t *testing.T) {
	for _, p := range []EdgePolicy{EdgeNone, EdgeWrap, EdgeClamp, EdgeReflect} {
		got, err := ParseEdgePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParseEdgePolicy("bounce")
	assert.Error(t, err)

	var p EdgePolicy
	require.NoError(t, p.UnmarshalText([]byte("reflect")))
	assert.Equal(t, EdgeReflect, p)
}

func TestVecNormalize(t *testing.T) {
	assert.InDelta(t, 1.0, V(3, 4).Normalize().Len(), 1e-9)
	assert.Equal(t, Vec{}, Vec{}.Normalize())
}

func TestPolygon(t *testing.T) {
	pts := Polygon(V(5, 5), 2, 4, 0)
	require.Len(t, pts, 4)
	assert.InDelta(t, 7.0, pts[0].X, 1e-9)
	assert.InDelta(t, 5.0, pts[0].Y, 1e-9)
	assert.InDelta(t, 7.0, pts[1].Y, 1e-9)

	for _, p := range Polygon(V(0, 0), 3, 6, 0.3) {
		assert.InDelta(t, 3.0, p.Len(), 1e-9)
	}
	assert.Nil(t, Polygon(V(0, 0), 1, 2, 0))
}
