package core

import (
	"image/color"
	"strconv"
)

// Color is a foreground color for a screen cell. Every frontend maps it
// through the same palette so terminal, window and PNG output agree.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	colorCount
)

var palette = [colorCount]struct {
	ansi int
	rgb  color.RGBA
}{
	ColorDefault: {-1, color.RGBA{0xd0, 0xd0, 0xd0, 0xff}},
	ColorRed:     {9, color.RGBA{0xff, 0x55, 0x55, 0xff}},
	ColorGreen:   {10, color.RGBA{0x55, 0xff, 0x55, 0xff}},
	ColorYellow:  {11, color.RGBA{0xff, 0xff, 0x55, 0xff}},
	ColorBlue:    {12, color.RGBA{0x55, 0x88, 0xff, 0xff}},
	ColorMagenta: {13, color.RGBA{0xff, 0x55, 0xff, 0xff}},
	ColorCyan:    {14, color.RGBA{0x55, 0xff, 0xff, 0xff}},
	ColorWhite:   {15, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	ColorOrange:  {208, color.RGBA{0xff, 0x87, 0x00, 0xff}},
	ColorGray:    {244, color.RGBA{0x80, 0x80, 0x80, 0xff}},
}

// ANSI returns the 256-color code as a string, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount || palette[c].ansi < 0 {
		return ""
	}
	return strconv.Itoa(palette[c].ansi)
}

// RGBA returns the color used by raster frontends.
func (c Color) RGBA() color.RGBA {
	if c >= colorCount {
		return palette[ColorDefault].rgb
	}
	return palette[c].rgb
}
