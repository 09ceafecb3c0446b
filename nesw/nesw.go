package nesw

import "github.com/arcknot/gridhfk/gridstate"

// PO counts pairs (i,j) with i<=j such that x[i] <= y[j]: "x northeast or
// equal of y" contributions across every column pair.
func PO(x, y gridstate.State) int {
	n := len(x)
	count := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if x[i] <= y[j] {
				count++
			}
		}
	}

	return count
}

// OP counts pairs (i,j) with i<j such that y[i] < x[j]: the southwest
// complement of PO.
func OP(y, x gridstate.State) int {
	n := len(y)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if y[i] < x[j] {
				count++
			}
		}
	}

	return count
}

// PP counts pairs (i,j) with i<=j such that x[i] < x[j]: the self-crossing
// count of a single marking against itself.
func PP(x gridstate.State) int {
	n := len(x)
	count := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if x[i] < x[j] {
				count++
			}
		}
	}

	return count
}

// SelfLinkingPlusOne computes 2A = M = SL+1 for the distinguished
// transverse generator of g: PP(X) - PO(X,O) - OP(O,X) + PP(O) + 1. The
// self-linking number is this value minus one.
func SelfLinkingPlusOne(g gridstate.Grid) int {
	return PP(g.X) - PO(g.X, g.O) - OP(g.O, g.X) + PP(g.O) + 1
}
