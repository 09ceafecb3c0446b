package lift

import (
	"github.com/arcknot/gridhfk/gridstate"
	"github.com/arcknot/gridhfk/rectangle"
)

// Seen is the interface lift's enumerators need against a frontier of
// already-explored lift states.
type Seen interface {
	Contains(s State) bool
}

// basepointColumn is the column carrying the branch cut for every cover
// built by this module.
const basepointColumn = 0

func crossesBasepoint(before, after gridstate.State) bool {
	lo, hi, ok := gridstate.ChangedColumns(before, after)
	return ok && (lo == basepointColumn || hi == basepointColumn)
}

// apply writes candidate into sheet k of s, or into sheet (k+1) mod sheets
// if the move that produced candidate crosses the basepoint column.
func apply(s State, k int, candidate gridstate.State, crosses bool) State {
	next := s.Clone()
	target := k
	if crosses {
		target = (k + 1) % len(s)
	}
	next[target] = candidate

	return next
}

func toggle(out []State, index map[string]int, cand State) []State {
	key := cand.String()
	if i, ok := index[key]; ok {
		out = append(out[:i], out[i+1:]...)
		for k, v := range index {
			if v > i {
				index[k] = v - 1
			}
		}
		delete(index, key)
		return out
	}
	index[key] = len(out)
	return append(out, cand)
}

// NewOutOf enumerates the lift states reachable from s by a single
// per-sheet empty rectangle whose image is not already present in
// prevIns, folding duplicates produced within this call modulo 2.
func NewOutOf(g Grid, s State, prevIns Seen) []State {
	var out []State
	index := map[string]int{}
	for k := 0; k < g.Sheets; k++ {
		for _, cand := range rectangle.OutOf(g.Grid, s[k]) {
			next := apply(s, k, cand, crossesBasepoint(s[k], cand))
			if prevIns != nil && prevIns.Contains(next) {
				continue
			}
			out = toggle(out, index, next)
		}
	}

	return out
}

// NewInto is the mirror image of NewOutOf for incoming rectangles.
func NewInto(g Grid, s State, prevOuts Seen) []State {
	var out []State
	index := map[string]int{}
	for k := 0; k < g.Sheets; k++ {
		for _, cand := range rectangle.Into(g.Grid, s[k]) {
			next := apply(s, k, cand, crossesBasepoint(s[k], cand))
			if prevOuts != nil && prevOuts.Contains(next) {
				continue
			}
			out = toggle(out, index, next)
		}
	}

	return out
}
