package entity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/toybox/internal/assets"
)

// Body is a movable, drawable thing: player, enemy, bullet, food, ant.
// The sprite handle is borrowed from the asset store and shared between
// bodies of the same kind.
type Body struct {
	Pos    Vec
	Dir    Vec     // Components in {-1, 0, 1} or a unit vector
	Speed  float64 // Units per second (or per tick when dt is 1)
	W, H   float64
	Sprite assets.Handle
}

// Box returns the body's bounding box.
func (b *Body) Box() Box {
	return Box{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// Center returns the center of the body's bounding box.
func (b *Body) Center() Vec {
	return b.Box().Center()
}

// Bounds is the extent of the play field, anchored at the origin.
type Bounds struct {
	W, H float64
}

// Box returns the play field as a box.
func (f Bounds) Box() Box {
	return Box{W: f.W, H: f.H}
}

// Outside reports whether b lies entirely outside the field.
func (f Bounds) Outside(b Box) bool {
	return b.Right() < 0 || b.X > f.W || b.Bottom() < 0 || b.Y > f.H
}

// EdgePolicy decides what happens when a body reaches the field boundary.
type EdgePolicy int

const (
	EdgeNone    EdgePolicy = iota // Unconstrained
	EdgeWrap                      // Toroidal, position folds into [0, bound)
	EdgeClamp                     // Capped to [0, bound-size]
	EdgeReflect                   // Direction flips on contact, position kept inside
)

var edgeNames = [...]string{"none", "wrap", "clamp", "reflect"}

func (p EdgePolicy) String() string {
	if p < 0 || int(p) >= len(edgeNames) {
		return "unknown"
	}
	return edgeNames[p]
}

// ParseEdgePolicy parses a policy name as written in config files.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	for i, n := range edgeNames {
		if n == s {
			return EdgePolicy(i), nil
		}
	}
	return EdgeNone, fmt.Errorf("entity: unknown edge policy %q", s)
}

// UnmarshalText lets policies be read straight from YAML.
func (p *EdgePolicy) UnmarshalText(text []byte) error {
	v, err := ParseEdgePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText writes the policy name.
func (p EdgePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Contact records which field edges a body touched during Advance.
type Contact uint8

const (
	ContactLeft Contact = 1 << iota
	ContactRight
	ContactTop
	ContactBottom
)

// Any reports whether any edge was touched.
func (c Contact) Any() bool {
	return c != 0
}

// Has reports whether all edges in mask were touched.
func (c Contact) Has(mask Contact) bool {
	return c&mask == mask
}

// Step moves b by a single Euler step: pos += dir * speed * dt.
func Step(b *Body, dt float64) {
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * dt))
}

// Advance steps b and then applies the edge policy against the field.
func Advance(b *Body, dt float64, field Bounds, policy EdgePolicy) Contact {
	Step(b, dt)
	return ApplyEdge(b, field, policy)
}

// ApplyEdge enforces the edge policy on b's current position and reports
// which edges it reached. With EdgeNone it only reports.
func ApplyEdge(b *Body, field Bounds, policy EdgePolicy) Contact {
	var c Contact
	maxX := math.Max(field.W-b.W, 0)
	maxY := math.Max(field.H-b.H, 0)

	if b.Pos.X <= 0 {
		c |= ContactLeft
	}
	if b.Pos.X >= maxX {
		c |= ContactRight
	}
	if b.Pos.Y <= 0 {
		c |= ContactTop
	}
	if b.Pos.Y >= maxY {
		c |= ContactBottom
	}

	switch policy {
	case EdgeWrap:
		b.Pos.X = wrap(b.Pos.X, field.W)
		b.Pos.Y = wrap(b.Pos.Y, field.H)
	case EdgeClamp:
		b.Pos.X = clamp(b.Pos.X, 0, maxX)
		b.Pos.Y = clamp(b.Pos.Y, 0, maxY)
	case EdgeReflect:
		if c.Has(ContactLeft) && b.Dir.X < 0 || c.Has(ContactRight) && b.Dir.X > 0 {
			b.Dir.X = -b.Dir.X
		}
		if c.Has(ContactTop) && b.Dir.Y < 0 || c.Has(ContactBottom) && b.Dir.Y > 0 {
			b.Dir.Y = -b.Dir.Y
		}
		b.Pos.X = clamp(b.Pos.X, 0, maxX)
		b.Pos.Y = clamp(b.Pos.Y, 0, maxY)
	}
	return c
}

// wrap folds v into [0, bound).
func wrap(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	v = math.Mod(v, bound)
	if v < 0 {
		v += bound
	}
	// v+bound can round up to bound itself for tiny negative v.
	if v >= bound {
		v = 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
