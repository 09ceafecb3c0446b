// Package chainedge implements the ordered, duplicate-free edge list that
// backs the bipartite chain complex: a flat, sorted slice of (start, end)
// pairs plus the mod-2 insertion and bulk symmetric-difference operations
// the reduction engine needs.
//
// "Adding mod 2" means: inserting (a,b) when absent, removing it when
// present. AddModTwoLists computes the symmetric difference between the
// current list and the full cross product of an ordered parent list and an
// ordered kid list in a single ordered merge pass, which is what lets
// Contract (package reduce) run without rescanning the whole edge list for
// every pair.
package chainedge
