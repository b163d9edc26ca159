package entity

// Box is an axis-aligned bounding box.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the box center.
func (b Box) Center() Vec {
	return Vec{b.X + b.W/2, b.Y + b.H/2}
}

// Degenerate reports whether the box has no area.
func (b Box) Degenerate() bool {
	return b.W <= 0 || b.H <= 0
}

// Contains reports whether p lies inside b, edges included.
// Used for point-vs-body checks such as a bullet's center against a target.
func (b Box) Contains(p Vec) bool {
	return b.X <= p.X && p.X <= b.Right() &&
		b.Y <= p.Y && p.Y <= b.Bottom()
}

// Overlaps reports whether a and b intersect on both axes, edges included.
// Used for body-vs-body checks. Symmetric in a and b.
func Overlaps(a, b Box) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

// Resolve tests every pair (a, b) with hit and returns the IDs of both
// sides that took part in a hit. Each a is consumed by at most one b, and
// each b is hit at most once per a; both sets are computed before any
// mutation so the caller removes everything in one pass.
//
// hits counts how many a's struck each b, for targets that absorb damage
// instead of being removed.
func Resolve[A, B any](as *List[A], bs *List[B], hit func(a *A, b *B) bool) (usedA Set, hitB Set, hits map[ID]int) {
	hits = make(map[ID]int)
	for aid, a := range as.All() {
		for bid, b := range bs.All() {
			if hit(a, b) {
				usedA.Add(aid)
				hitB.Add(bid)
				hits[bid]++
				break
			}
		}
	}
	return usedA, hitB, hits
}

// PointHits returns the IDs of every element whose point lies in target.
func PointHits[T any](l *List[T], point func(*T) Vec, target Box) Set {
	var s Set
	for id, v := range l.All() {
		if target.Contains(point(v)) {
			s.Add(id)
		}
	}
	return s
}
