// Package bfsgraph implements the lazy bipartite BFS layer driver shared by
// every public decision procedure: alternating rounds discover new
// out-vertices from the current in-frontier (rectangles into each in-state,
// filtered against previously-seen out-states) and then new in-vertices
// from that out-frontier (rectangles out of each out-state, filtered
// against previously-seen in-states), folding the growing edge list modulo
// 2 after every round until the sentinel vertex is eliminated or trapped.
package bfsgraph
