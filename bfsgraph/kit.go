package bfsgraph

import "github.com/arcknot/gridhfk/seenset"

// Seen is the subset of *seenset.Tree[V] the enumerator callbacks need: a
// membership test against a frontier that has already been fully expanded.
type Seen[V any] interface {
	Contains(v V) bool
}

// Kit supplies the per-domain pieces of the driver: how to compare two
// states for the ordered seen sets, and how to enumerate the new
// neighbors of a state in each direction. NewInto(u, prevOuts) must return
// the out-states with a rectangle into u that are not already in
// prevOuts, already deduplicated against each other. NewOutOf is the
// mirror image for the opposite direction.
type Kit[V any] struct {
	Cmp      seenset.Comparer[V]
	NewInto  func(u V, prevOuts Seen[V]) []V
	NewOutOf func(v V, prevIns Seen[V]) []V
}
