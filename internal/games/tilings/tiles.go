package tilings

import (
	"fmt"
	"math"

	"github.com/vovakirdan/toybox/internal/entity"
)

// Kind is a regular tiling of the plane.
type Kind int

const (
	Triangles Kind = iota
	Squares
	Hexagons
	kindCount
)

var kindNames = [...]string{"triangles", "squares", "hexagons"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind parses a tiling name as written in config files.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return Triangles, fmt.Errorf("tilings: unknown kind %q", s)
}

var sqrt3 = math.Sqrt(3)

// tile returns the polygons of kind k with edge size that cover a w*h
// field, in row-major order.
func tile(k Kind, size, w, h float64) [][]entity.Vec {
	switch k {
	case Triangles:
		return triangles(size, w, h)
	case Squares:
		return squares(size, w, h)
	default:
		return hexagons(size, w, h)
	}
}

func squares(s, w, h float64) [][]entity.Vec {
	var out [][]entity.Vec
	for y := 0.0; y < h; y += s {
		for x := 0.0; x < w; x += s {
			out = append(out, []entity.Vec{
				{X: x, Y: y}, {X: x + s, Y: y}, {X: x + s, Y: y + s}, {X: x, Y: y + s},
			})
		}
	}
	return out
}

// triangles alternates up and down triangles along each row.
func triangles(s, w, h float64) [][]entity.Vec {
	var out [][]entity.Vec
	th := s * sqrt3 / 2
	for j := 0; float64(j)*th < h; j++ {
		y0 := float64(j) * th
		y1 := y0 + th
		for i := -1; float64(i)*s/2 < w; i++ {
			x := float64(i) * s / 2
			if (i+j)%2 == 0 {
				out = append(out, []entity.Vec{{X: x, Y: y1}, {X: x + s, Y: y1}, {X: x + s/2, Y: y0}})
			} else {
				out = append(out, []entity.Vec{{X: x, Y: y0}, {X: x + s, Y: y0}, {X: x + s/2, Y: y1}})
			}
		}
	}
	return out
}

// hexagons lays flat-topped hexagons in offset columns.
func hexagons(s, w, h float64) [][]entity.Vec {
	var out [][]entity.Vec
	rowStep := sqrt3 * s
	for j := 0; float64(j-1)*rowStep < h; j++ {
		for i := 0; float64(i)*1.5*s-s < w; i++ {
			cy := float64(j) * rowStep
			if i%2 == 1 {
				cy -= rowStep / 2
			}
			out = append(out, entity.Polygon(entity.V(float64(i)*1.5*s, cy), s, 6, 0))
		}
	}
	return out
}
