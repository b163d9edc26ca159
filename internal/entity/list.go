package entity

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// ID identifies an entity within one List for its whole life.
// IDs are never reused, so a stale ID can never remove a newer entity.
type ID uint32

// Set is a set of entity IDs, the removal set built during a collision pass.
// The zero value is an empty set ready to use.
type Set struct {
	m *intmap.Map[ID, struct{}]
}

// SetOf builds a set from the given IDs.
func SetOf(ids ...ID) Set {
	var s Set
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set.
func (s *Set) Add(id ID) {
	if s.m == nil {
		s.m = intmap.New[ID, struct{}](8)
	}
	s.m.Put(id, struct{}{})
}

// Has reports whether id is in the set.
func (s Set) Has(id ID) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(id)
	return ok
}

// Len returns the number of IDs in the set.
func (s Set) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Merge adds every ID of o into s.
func (s *Set) Merge(o Set) {
	if o.m == nil {
		return
	}
	o.m.ForEach(func(id ID, _ struct{}) bool {
		s.Add(id)
		return true
	})
}

// List is an unordered-by-contract, insertion-ordered collection of
// entities with stable IDs.
type List[T any] struct {
	ids   []ID
	items []T
	next  ID
}

// Add appends v and returns its ID.
func (l *List[T]) Add(v T) ID {
	l.next++
	l.ids = append(l.ids, l.next)
	l.items = append(l.items, v)
	return l.next
}

// Len returns the number of live entities.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the i-th entity in insertion order.
func (l *List[T]) At(i int) (ID, *T) {
	return l.ids[i], &l.items[i]
}

// All iterates over live entities in insertion order.
// The yielded pointers are valid until the next Add or Remove.
func (l *List[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i := range l.items {
			if !yield(l.ids[i], &l.items[i]) {
				return
			}
		}
	}
}

// Remove drops every entity whose ID is in s, keeping the order of the
// rest, and returns how many were removed. IDs that are absent, including
// ones removed earlier, are ignored.
func (l *List[T]) Remove(s Set) int {
	if s.Len() == 0 {
		return 0
	}
	return l.RemoveFunc(func(id ID, _ *T) bool { return s.Has(id) })
}

// RemoveFunc drops every entity for which drop returns true.
func (l *List[T]) RemoveFunc(drop func(ID, *T) bool) int {
	n := 0
	for i := range l.items {
		if drop(l.ids[i], &l.items[i]) {
			continue
		}
		l.ids[n] = l.ids[i]
		l.items[n] = l.items[i]
		n++
	}
	removed := len(l.items) - n
	clear(l.items[n:])
	l.ids = l.ids[:n]
	l.items = l.items[:n]
	return removed
}

// Clear removes every entity. IDs keep increasing across Clear.
func (l *List[T]) Clear() {
	clear(l.items)
	l.ids = l.ids[:0]
	l.items = l.items[:0]
}
