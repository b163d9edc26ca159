// Package entity is the per-frame update/collision loop shared by the games:
// Euler movement with selectable edge policies, AABB and point collision
// tests, fixed-period spawning, ID-keyed removal and the game-over latch.
//
// A frame is always: read input, mutate bodies, Advance, resolve collisions
// into removal sets, Remove, render. Everything here is single-threaded and
// allocation-light; nothing keeps references to caller state.
package entity

import "math"

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v*k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Len returns the euclidean length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector if v has no length.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Cell truncates both components to grid coordinates.
func (v Vec) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Polygon returns the vertices of a regular polygon around center, the
// first at angle rotation (radians). Fewer than three sides gives nil.
func Polygon(center Vec, radius float64, sides int, rotation float64) []Vec {
	if sides < 3 {
		return nil
	}
	pts := make([]Vec, sides)
	for i := range pts {
		a := rotation + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = Vec{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)}
	}
	return pts
}
