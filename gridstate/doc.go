// Package gridstate defines the grid diagram and state primitives shared by
// the rest of gridhfk: modular torus arithmetic, permutation validation,
// column swaps, and the total order used to number and de-duplicate states.
//
// A Grid of arc index N is a pair of permutations X, O of {1,...,N} with
// X[i] != O[i] for every column i. A State is itself a permutation of
// {1,...,N}; it names one grid point per row and column. Every index into a
// Grid or State wraps modulo N via Mod/ModUp, since the grid lives on a
// torus.
package gridstate
