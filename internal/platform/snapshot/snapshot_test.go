package snapshot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/toybox/internal/core"
)

func TestRenderSize(t *testing.T) {
	s := core.NewScreen(10, 4)
	img := Render(s)
	assert.Equal(t, 10*CellW, img.Bounds().Dx())
	assert.Equal(t, 4*CellH, img.Bounds().Dy())
}

func TestRenderBlankIsBackground(t *testing.T) {
	s := core.NewScreen(3, 2)
	img := Render(s)
	r, g, b, _ := img.At(5, 5).RGBA()
	br, bg, bb, _ := Background.RGBA()
	assert.Equal(t, []uint32{br, bg, bb}, []uint32{r, g, b})
}

func TestRenderDrawsGlyphInColor(t *testing.T) {
	s := core.NewScreen(1, 1)
	s.SetColor(0, 0, '@', core.ColorRed)
	img := Render(s)

	want := core.ColorRed.RGBA()
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if uint8(r>>8) == want.R && uint8(g>>8) == want.G && uint8(bl>>8) == want.B {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "expected a red pixel for the glyph")
}

func TestEncodeProducesPNG(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ok")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4*CellW, img.Bounds().Dx())
}

func TestSaveCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	require.NoError(t, Save(path, core.NewScreen(2, 2)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
