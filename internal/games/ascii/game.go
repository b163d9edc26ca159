// Package ascii renders an image from the asset store as ASCII art, mapping
// pixel brightness onto a character ramp.
package ascii

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/vovakirdan/toybox/internal/assets"
	"github.com/vovakirdan/toybox/internal/core"
	"github.com/vovakirdan/toybox/internal/registry"
)

// DefaultImage is the asset shown when present; otherwise the first image
// in the store is used.
const DefaultImage = "ascii.png"

// Ramp orders characters from dark to bright.
const Ramp = " .:-=+*#%@"

const (
	hudHeight    = 1
	contrastStep = 10.0
	maxContrast  = 90.0
	minContrast  = -90.0
)

// Game implements the viewer. It never ends.
type Game struct {
	store    *assets.Store
	name     string
	src      image.Image
	screenW  int
	screenH  int
	contrast float64
	invert   bool
	grid     [][]rune
}

// New creates a viewer with no image selected.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("ascii", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "ascii" }

// Title returns the display name.
func (g *Game) Title() string { return "ASCII Viewer" }

// UseAssets picks the image to show. An image is required.
func (g *Game) UseAssets(store *assets.Store) error {
	g.store = store
	name := DefaultImage
	h, err := store.Lookup(name)
	if err != nil {
		h, name = 0, ""
		for _, n := range store.Names() {
			if assets.KindOf(n) == assets.KindImage {
				h, _ = store.Lookup(n)
				name = n
				break
			}
		}
	}
	if !h.Valid() {
		return fmt.Errorf("ascii: %w: no image in store", assets.ErrMissingAsset)
	}
	img, err := store.Image(h)
	if err != nil {
		return fmt.Errorf("ascii: %w", err)
	}
	g.name = name
	g.src = img
	return nil
}

// Reset fits the image to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.contrast = 0
	g.invert = false
	g.rebuild()
}

// Step adjusts contrast with Up/Down and inverts the ramp on Fire.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	changed := true
	switch {
	case input.Has(core.ActionUp):
		g.contrast = min(g.contrast+contrastStep, maxContrast)
	case input.Has(core.ActionDown):
		g.contrast = max(g.contrast-contrastStep, minContrast)
	case input.Has(core.ActionFire):
		g.invert = !g.invert
	case input.Has(core.ActionRestart):
		g.contrast, g.invert = 0, false
	default:
		changed = false
	}
	if changed {
		g.rebuild()
	}
	return core.StepResult{State: g.State()}
}

// rebuild resizes the source to the screen and maps it onto the ramp.
// Terminal cells are about twice as tall as wide, so rows are halved.
func (g *Game) rebuild() {
	g.grid = nil
	if g.src == nil {
		return
	}
	w, h := g.screenW, g.screenH-hudHeight
	if w <= 0 || h <= 0 {
		return
	}
	b := g.src.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 {
		// Keep the aspect ratio inside the w x h cell box.
		fitW := min(w, b.Dx()*h*2/b.Dy())
		fitH := min(h, b.Dy()*w/(b.Dx()*2))
		w, h = max(fitW, 1), max(fitH, 1)
	}

	img := imaging.Resize(g.src, w, h, imaging.Box)
	img = imaging.Grayscale(img)
	if g.contrast != 0 {
		img = imaging.AdjustContrast(img, g.contrast)
	}

	g.grid = make([][]rune, h)
	for y := range h {
		row := make([]rune, w)
		for x := range w {
			row[x] = Char(img.NRGBAAt(x, y), g.invert)
		}
		g.grid[y] = row
	}
}

// Char maps a pixel to a ramp character by its average RGB brightness.
// Transparent pixels are blank.
func Char(c color.NRGBA, invert bool) rune {
	ramp := []rune(Ramp)
	if c.A == 0 {
		return ramp[0]
	}
	brightness := (int(c.R) + int(c.G) + int(c.B)) / 3
	i := brightness * (len(ramp) - 1) / 255
	if invert {
		i = len(ramp) - 1 - i
	}
	return ramp[i]
}

// Render draws the converted image centered under the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.src == nil {
		dst.DrawOverlay("No image", "Put a .png in the assets directory")
		return
	}
	dst.DrawText(0, 0, fmt.Sprintf(" %s  contrast %+.0f  invert %v", g.name, g.contrast, g.invert))

	if len(g.grid) == 0 {
		return
	}
	ox := (dst.Width() - len(g.grid[0])) / 2
	oy := hudHeight + (dst.Height()-hudHeight-len(g.grid))/2
	for y, row := range g.grid {
		dst.DrawText(ox, oy+y, string(row))
	}
}

// State returns the current state.
func (g *Game) State() core.GameState {
	return core.GameState{}
}
