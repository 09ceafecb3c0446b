package chainedge

import "sort"

// Edge is a directed pair (Start, End) between a global out-vertex number
// (or the sentinel 0) and a global in-vertex number.
type Edge struct {
	Start int
	End   int
}

// Less reports whether e sorts strictly before o under the program's
// canonical ascending (Start, End) order.
func (e Edge) Less(o Edge) bool {
	if e.Start != o.Start {
		return e.Start < o.Start
	}

	return e.End < o.End
}

// List is a strictly ascending, duplicate-free sequence of edges. The zero
// value is an empty list.
type List []Edge

// IndexOf returns the position of e in l, or -1 if absent. Runs in
// O(log n) via binary search since l is kept sorted.
func (l List) IndexOf(e Edge) int {
	i := sort.Search(len(l), func(i int) bool { return !l[i].Less(e) })
	if i < len(l) && l[i] == e {
		return i
	}

	return -1
}

// Contains reports whether e is present in l.
func (l List) Contains(e Edge) bool {
	return l.IndexOf(e) >= 0
}

// searchInsertPos returns the index at which e belongs in l to keep it
// sorted ascending: the position of the first element not less than e.
func searchInsertPos(l List, e Edge) int {
	return sort.Search(len(l), func(i int) bool { return !l[i].Less(e) })
}

// IsOrdered reports whether l is strictly ascending with no duplicates;
// exercised by tests to pin the edge-list invariant from the spec.
func (l List) IsOrdered() bool {
	for i := 1; i < len(l); i++ {
		if !l[i-1].Less(l[i]) {
			return false
		}
	}

	return true
}

// Head returns the first edge and true, or the zero Edge and false if l is
// empty.
func (l List) Head() (Edge, bool) {
	if len(l) == 0 {
		return Edge{}, false
	}

	return l[0], true
}
