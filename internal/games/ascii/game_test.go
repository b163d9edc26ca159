package ascii

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/core"
)

func TestChar(t *testing.T) {
	tests := []struct {
		name   string
		c      color.NRGBA
		invert bool
		want   rune
	}{
		{"black", color.NRGBA{0, 0, 0, 255}, false, ' '},
		{"white", color.NRGBA{255, 255, 255, 255}, false, '@'},
		{"white inverted", color.NRGBA{255, 255, 255, 255}, true, ' '},
		{"mid gray", color.NRGBA{128, 128, 128, 255}, false, '='},
		{"transparent", color.NRGBA{255, 255, 255, 0}, false, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Char(tt.c, tt.invert))
		})
	}
}

// halves returns an image that is black on the left and white on the right.
func halves(w, h int) image.Image {
	img := imaging.New(w, h, color.Black)
	for y := range h {
		for x := w / 2; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestUseAssetsPicksImage(t *testing.T) {
	store := assets.New()
	store.AddBoard("map.txt", []string{"#"})
	store.AddImage("photo.png", halves(4, 4))

	g := New()
	require.NoError(t, g.UseAssets(store))
	assert.Equal(t, "photo.png", g.name)

	store.AddImage(DefaultImage, halves(2, 2))
	require.NoError(t, g.UseAssets(store))
	assert.Equal(t, DefaultImage, g.name)
}

func TestUseAssetsRequiresImage(t *testing.T) {
	store := assets.New()
	store.AddBoard("map.txt", []string{"#"})

	err := New().UseAssets(store)
	assert.ErrorIs(t, err, assets.ErrMissingAsset)
}

func TestRenderHalves(t *testing.T) {
	store := assets.New()
	store.AddImage(DefaultImage, halves(80, 40))

	g := New()
	require.NoError(t, g.UseAssets(store))
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 21})

	require.Len(t, g.grid, 10)
	require.Len(t, g.grid[0], 40)

	scr := core.NewScreen(40, 21)
	g.Render(scr)
	row := scr.Row(hudHeight + 5 + 5)
	assert.Equal(t, ' ', []rune(row)[2])
	assert.Contains(t, "%@", string([]rune(row)[37]))

	g.Step(core.NewInputFrame(core.ActionFire))
	assert.Equal(t, '@', g.grid[5][2])
	assert.Contains(t, " .", string(g.grid[5][37]))
}

func TestContrastIsBounded(t *testing.T) {
	store := assets.New()
	store.AddImage(DefaultImage, halves(8, 8))
	g := New()
	require.NoError(t, g.UseAssets(store))
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 11})

	for range 20 {
		g.Step(core.NewInputFrame(core.ActionUp))
	}
	assert.Equal(t, maxContrast, g.contrast)

	g.Step(core.NewInputFrame(core.ActionRestart))
	assert.Equal(t, 0.0, g.contrast)
}
