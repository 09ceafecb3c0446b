// Package gridhfk decides whether a generator of a grid diagram's chain
// complex is null-homologous.
//
// What is gridhfk?
//
//	A small decision-procedure library built around grid diagrams for
//	knots and links:
//
//	  - State model: permutation pairs (X, O) and generator states, with
//	    the empty-rectangle moves that generate the D0/D1 chain maps.
//	  - Reduction: mod-2 Gaussian elimination over a lazily-built,
//	    BFS-layered edge list (the bipartite "ins"/"outs" graph of a
//	    single decision run).
//	  - Lift: the n-sheet cyclic branched cover variant, generalizing a
//	    state to one permutation per sheet.
//
// Everything is organized under subpackages:
//
//	gridstate/   — permutation states, grid validation, LL/UR generators
//	rectangle/   — empty-rectangle enumeration (D0/D1 candidates)
//	chainedge/   — ordered, mod-2-deduplicated edge lists
//	reduce/      — Gaussian elimination over the edge list
//	bfsgraph/    — the generic BFS layer driver shared by D0Q/D1Q/lift
//	lift/        — n-sheet branched-cover states and rectangle rule
//	homology/    — the three public decision procedures
//	nesw/        — corner-counting invariants (Maslov/self-linking)
//	render/      — ASCII grid and state printing
//	gridparse/   — permutation/grid text parsing
//	gridlog/     — leveled logging threaded through a decision run
//	gridmetrics/ — prometheus instrumentation for the same run
//	cmd/gridhfk/ — the CLI entry point
package gridhfk
