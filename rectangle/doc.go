// Package rectangle enumerates empty rectangles between grid states: the
// single elementary move of grid Floer homology's differential.
//
// An empty rectangle from state s to state t is a pair of columns (i, j)
// such that t = swap(s, i, j) and no X- or O-marking, and no other point of
// s, lies strictly inside the rectangle spanned by the four grid points at
// the corners. OutOf and Into enumerate the outgoing and incoming
// rectangles from a single state; FixedWeightOutOf additionally filters by
// the count of X-markings crossed, used to seed the D1 chain map. The "New"
// variants suppress candidates already numbered in a previous BFS layer
// (the seen set) and fold duplicates within a single call via mod-2
// cancellation, which is what lets the bipartite graph be built lazily,
// layer by layer, instead of all at once.
package rectangle
