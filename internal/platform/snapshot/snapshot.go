// Package snapshot rasterizes a character Screen into a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/toybox/internal/core"
)

// Cell size in pixels for the built-in 7x13 face.
const (
	CellW = 8
	CellH = 14
)

// Background is the fill behind every frame.
var Background = color.RGBA{0x10, 0x10, 0x18, 0xff}

// Render draws every non-blank cell of s with its palette color.
func Render(s *core.Screen) image.Image {
	w, h := s.Width(), s.Height()
	dc := gg.NewContext(max(w, 1)*CellW, max(h, 1)*CellH)
	dc.SetColor(Background)
	dc.Clear()

	for y := range h {
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			dc.SetColor(cell.Color.RGBA())
			// gg draws strings from the baseline
			dc.DrawString(string(cell.Rune), float64(x*CellW), float64((y+1)*CellH-3))
		}
	}
	return dc.Image()
}

// Encode writes s as PNG to w.
func Encode(w io.Writer, s *core.Screen) error {
	dc := gg.NewContextForImage(Render(s))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Save writes s as a PNG file, creating parent directories.
func Save(path string, s *core.Screen) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, s)
}
