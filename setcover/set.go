// SPDX-License-Identifier: MIT

package setcover

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is an unordered collection of distinct elements.
//
// A nil Set is a valid empty set for every read-only method; Add and Union
// need a non-nil receiver (use NewSet).
type Set[E comparable] map[E]struct{}

// NewSet returns a set holding the given elements. Duplicates collapse.
//
// Complexity: O(len(elems)).
func NewSet[E comparable](elems ...E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}

	return s
}

// Add inserts e into s.
func (s Set[E]) Add(e E) { s[e] = struct{}{} }

// Contains reports whether e is a member of s.
func (s Set[E]) Contains(e E) bool {
	_, ok := s[e]
	return ok
}

// Len returns |s|.
func (s Set[E]) Len() int { return len(s) }

// Clone returns an independent copy of s. Clone of a nil set is an empty,
// non-nil set.
func (s Set[E]) Clone() Set[E] {
	c := make(Set[E], len(s))
	for e := range s {
		c[e] = struct{}{}
	}

	return c
}

// Equal reports whether s and o hold exactly the same elements.
//
// Complexity: O(min(|s|, |o|)) after the size check.
func (s Set[E]) Equal(o Set[E]) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if _, ok := o[e]; !ok {
			return false
		}
	}

	return true
}

// CountNotIn returns |s − o|, the number of members of s absent from o.
//
// Complexity: O(|s|).
func (s Set[E]) CountNotIn(o Set[E]) int {
	var n int
	for e := range s {
		if _, ok := o[e]; !ok {
			n++
		}
	}

	return n
}

// Union adds every member of o to s and returns s.
//
// Complexity: O(|o|).
func (s Set[E]) Union(o Set[E]) Set[E] {
	for e := range o {
		s[e] = struct{}{}
	}

	return s
}

// Intersect returns a new set holding the members of s that are also in o.
func (s Set[E]) Intersect(o Set[E]) Set[E] {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[E], len(small))
	for e := range small {
		if _, ok := large[e]; ok {
			out[e] = struct{}{}
		}
	}

	return out
}

// Difference returns a new set holding the members of s absent from o.
func (s Set[E]) Difference(o Set[E]) Set[E] {
	out := make(Set[E])
	for e := range s {
		if _, ok := o[e]; !ok {
			out[e] = struct{}{}
		}
	}

	return out
}

// Sorted returns the members of s in ascending order.
//
// Complexity: O(n log n).
func Sorted[E constraints.Ordered](s Set[E]) []E {
	keys := maps.Keys(s)
	slices.Sort(keys)

	return keys
}
