package chainedge

// AppendOrdered inserts (a,b) at its sorted position in l. Precondition:
// (a,b) is not already present in l; callers that are unsure should use
// AddModTwo instead.
func AppendOrdered(a, b int, l List) List {
	e := Edge{a, b}
	i := searchInsertPos(l, e)
	l = append(l, Edge{})
	copy(l[i+1:], l[i:])
	l[i] = e

	return l
}

// AddModTwo adds (a,b) to l under mod-2 arithmetic: removes it if present,
// inserts it in sorted order otherwise.
func AddModTwo(a, b int, l List) List {
	e := Edge{a, b}
	i := searchInsertPos(l, e)
	if i < len(l) && l[i] == e {
		return append(l[:i], l[i+1:]...)
	}
	l = append(l, Edge{})
	copy(l[i+1:], l[i:])
	l[i] = e

	return l
}

// AddModTwoLists computes the symmetric difference of l with the full
// cross product parents x kids (both assumed ascending and duplicate-free),
// iterated in the lexicographic order that matches l's order. A single
// merge pass over l and the cross product runs in O(len(l) +
// len(parents)*len(kids)).
func AddModTwoLists(l List, parents, kids []int) List {
	if len(parents) == 0 || len(kids) == 0 {
		return l
	}
	out := make(List, 0, len(l)+len(parents)*len(kids))
	li := 0
	for _, p := range parents {
		for _, k := range kids {
			pair := Edge{p, k}
			for li < len(l) && l[li].Less(pair) {
				out = append(out, l[li])
				li++
			}
			if li < len(l) && l[li] == pair {
				li++ // present in both sets: cancels mod 2
			} else {
				out = append(out, pair)
			}
		}
	}
	out = append(out, l[li:]...)

	return out
}
