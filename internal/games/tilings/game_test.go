package tilings

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/entity"
)

func newTestGame(t *testing.T, kind string, size float64) *Game {
	t.Helper()
	g := New()
	g.cfg.Kind = kind
	g.cfg.Size = size
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 25, TickRate: 60})
	return g
}

func TestParseKind(t *testing.T) {
	for k := Triangles; k < kindCount; k++ {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("pentagons")
	assert.Error(t, err)
}

func TestSquaresCoverField(t *testing.T) {
	g := newTestGame(t, "squares", 4)
	// 40x24 rows field, 4-row squares
	assert.Len(t, g.tiles, 10*6)

	for _, sq := range g.tiles {
		require.Len(t, sq, 4)
		assert.InDelta(t, 4.0, sq[1].Sub(sq[0]).Len(), 1e-9)
	}
}

func TestTrianglesAreEquilateral(t *testing.T) {
	g := newTestGame(t, "triangles", 4)
	require.NotEmpty(t, g.tiles)
	for _, tri := range g.tiles {
		require.Len(t, tri, 3)
		for i := range tri {
			assert.InDelta(t, 4.0, tri[(i+1)%3].Sub(tri[i]).Len(), 1e-9)
		}
	}
}

func TestHexagonNeighborsShareEdges(t *testing.T) {
	g := newTestGame(t, "hexagons", 3)
	require.NotEmpty(t, g.tiles)

	center := func(pts []entity.Vec) entity.Vec {
		var c entity.Vec
		for _, p := range pts {
			c = c.Add(p)
		}
		return c.Scale(1 / float64(len(pts)))
	}

	// Every hexagon has a neighbor exactly sqrt(3)*size away
	want := math.Sqrt(3) * 3
	for i, a := range g.tiles {
		found := false
		for j, b := range g.tiles {
			if i != j && math.Abs(center(a).Sub(center(b)).Len()-want) < 1e-9 {
				found = true
				break
			}
		}
		assert.True(t, found, "hexagon %d has no neighbor", i)
	}
}

func TestRevealOverTime(t *testing.T) {
	g := newTestGame(t, "squares", 4)
	g.cfg.RevealPerTick = 2

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	assert.Equal(t, 4, g.State().Score)

	g.Step(core.NewInputFrame(core.ActionFire))
	assert.Equal(t, len(g.tiles), g.revealed)

	g.Step(core.NewInputFrame())
	assert.Equal(t, len(g.tiles), g.revealed, "reveal stops at the last tile")

	g.Step(core.NewInputFrame(core.ActionRestart))
	assert.Zero(t, g.revealed)
}

func TestCycleKindAndSize(t *testing.T) {
	g := newTestGame(t, "hexagons", 3)

	g.Step(core.NewInputFrame(core.ActionRight))
	assert.Equal(t, Triangles, g.kind)
	g.Step(core.NewInputFrame(core.ActionLeft))
	assert.Equal(t, Hexagons, g.kind)

	for range 20 {
		g.Step(core.NewInputFrame(core.ActionUp))
	}
	assert.Equal(t, float64(maxSize), g.size)
	for range 20 {
		g.Step(core.NewInputFrame(core.ActionDown))
	}
	assert.Equal(t, float64(minSize), g.size)
}

func TestRenderSquareGrid(t *testing.T) {
	g := newTestGame(t, "squares", 4)
	g.Step(core.NewInputFrame(core.ActionFire))

	screen := core.NewScreen(80, 25)
	g.Render(screen)

	// Horizontal edges every 4 rows below the HUD, vertical every 8 columns
	assert.Equal(t, '·', screen.Get(3, hudHeight+4))
	assert.Equal(t, '·', screen.Get(8, hudHeight+2))
	assert.Equal(t, ' ', screen.Get(3, hudHeight+2))
}

func TestConfigureRejectsUnknownKind(t *testing.T) {
	g := New()
	path := filepath.Join(t.TempDir(), "tilings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: circles\n"), 0o644))
	assert.Error(t, g.Configure(path, ""))
}
