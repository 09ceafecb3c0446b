package reduce

import (
	"fmt"

	"github.com/arcknot/gridhfk/chainedge"
	"github.com/arcknot/gridhfk/gridlog"
	"github.com/arcknot/gridhfk/gridmetrics"
)

// Contract Gaussian-eliminates edge (a,b) from e over GF(2). Precondition:
// (a,b) is present in e. Every other edge touching a or b is removed; the
// complete bipartite product of the edges' remaining endpoints — parents P
// (edges ending at b) and kids K (edges starting at a) — is then XORed
// back in via chainedge.AddModTwoLists.
//
// A single ascending pass over e produces P and K already in ascending
// order: since e is sorted by (Start, End), edges with End == b are
// encountered with non-decreasing Start, and edges with Start == a form a
// contiguous run sorted by End.
func Contract(a, b int, e chainedge.List) chainedge.List {
	other := make(chainedge.List, 0, len(e))
	var parents, kids []int
	for _, edge := range e {
		switch {
		case edge.Start == a && edge.End == b:
			// the pivot itself: drop it
		case edge.End == b:
			parents = append(parents, edge.Start)
		case edge.Start == a:
			kids = append(kids, edge.End)
		default:
			other = append(other, edge)
		}
	}

	return chainedge.AddModTwoLists(other, parents, kids)
}

// SpecialHomology repeatedly contracts the first edge in e that neither
// starts at the sentinel vertex init nor ends above final, until no such
// edge remains. Edges starting at init and edges ending above final are
// deferred: later BFS layers may still add edges touching those endpoints.
//
// Because every (init, *) edge sorts before any edge with a positive start,
// it always forms a genuine prefix of e; a single scan per iteration
// suffices to skip it and then find the first remaining edge with
// End <= final.
func SpecialHomology(init, final int, e chainedge.List, logger *gridlog.Logger, metrics *gridmetrics.Collector) chainedge.List {
	if len(e) > 0 && e[0].Start != init {
		panic(fmt.Errorf("%w: init=%d head=%v", ErrInvariantViolated, init, e[0]))
	}

	for {
		idx := 0
		for idx < len(e) && e[idx].Start == init {
			idx++
		}
		j := idx
		for j < len(e) && e[j].End > final {
			j++
		}
		if j >= len(e) {
			return e
		}
		e = Contract(e[j].Start, e[j].End, e)
		logger.Contraction(len(e))
		metrics.Contracted()
	}
}
