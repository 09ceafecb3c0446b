// Package reduce implements the mod-2 Gaussian elimination that decides
// null-homologousness: Contract eliminates a single edge by replacing its
// neighborhood with the complete bipartite product of its parents and
// kids, and SpecialHomology repeatedly contracts edges that are safe to
// eliminate — not touching the sentinel vertex, not reaching into
// not-yet-fully-explored territory — until none remain.
package reduce
