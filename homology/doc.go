// Package homology exposes the public null-homologous decision procedures:
// NullHomologousD0Q and NullHomologousD1Q for an ordinary grid state, and
// NullHomologousLift for an n-sheet branched cover. Each wires the
// rectangle enumerators of its domain into a bfsgraph.Run call; only the
// seeding differs between D0 and D1.
package homology
