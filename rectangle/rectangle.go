package rectangle

import "github.com/arcknot/gridhfk/gridstate"

// Seen reports whether a state has already been numbered in a previous BFS
// layer. seenset.Set (a sorted slice searched by binary search) satisfies
// it.
type Seen interface {
	Contains(s gridstate.State) bool
}

func mod(a, n int) int   { return gridstate.Mod(a, n) }
func modUp(a, n int) int { return gridstate.ModUp(a, n) }

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}

// OutOf enumerates every empty rectangle out of s: the free-form outgoing
// enumerator, unfiltered by any seen set. Candidates are returned in
// scan order (increasing starting column, then increasing width); this
// order has no semantic meaning beyond determinism.
func OutOf(g gridstate.Grid, s gridstate.State) []gridstate.State {
	n := g.ArcIndex
	var out []gridstate.State
	for ell := 0; ell < n; ell++ {
		h := minInt(mod(int(g.O[ell])-int(s[ell]), n), mod(int(g.X[ell])-int(s[ell]), n))
		for w := 1; w < n && h > 0; w++ {
			col := mod(ell+w, n)
			if mod(int(s[col])-int(s[ell]), n) <= h {
				out = append(out, gridstate.SwapCols(ell, col, s))
				h = mod(int(s[col])-int(s[ell]), n)
			}
			h = min3(h, mod(int(g.O[col])-int(s[ell]), n), mod(int(g.X[col])-int(s[ell]), n))
		}
	}

	return out
}

// Into enumerates every empty rectangle into s: the free-form incoming
// enumerator, unfiltered by any seen set.
func Into(g gridstate.Grid, s gridstate.State) []gridstate.State {
	n := g.ArcIndex
	var out []gridstate.State
	for ell := 0; ell < n; ell++ {
		h := minInt(modUp(int(s[ell])-int(g.O[ell]), n), modUp(int(s[ell])-int(g.X[ell]), n))
		for w := 1; w < n && h > 0; w++ {
			col := mod(ell+w, n)
			if modUp(int(s[ell])-int(s[col]), n) < h {
				out = append(out, gridstate.SwapCols(ell, col, s))
				h = modUp(int(s[ell])-int(s[col]), n)
			}
			h = min3(h, modUp(int(s[ell])-int(g.O[col]), n), modUp(int(s[ell])-int(g.X[col]), n))
		}
	}

	return out
}

// FixedWeightOutOf enumerates outgoing rectangles out of s that cross
// exactly wt X-markings, folding duplicate targets within this call via
// mod-2 cancellation. wt=1 seeds the D1 chain map.
func FixedWeightOutOf(g gridstate.Grid, wt int, s gridstate.State) []gridstate.State {
	n := g.ArcIndex
	var out []gridstate.State
	index := make(map[string]int)
	for ell := 0; ell < n; ell++ {
		h := mod(int(g.O[ell])-int(s[ell]), n)
		for w := 1; w < n && h > 0; w++ {
			col := mod(ell+w, n)
			if mod(int(s[col])-int(s[ell]), n) <= h {
				height := mod(int(s[col])-int(s[ell]), n)
				weight := 0
				for i := 0; i < w; i++ {
					if mod(int(g.X[mod(ell+i, n)])-int(s[ell]), n) < height {
						weight++
					}
				}
				if weight == wt {
					cand := gridstate.SwapCols(ell, col, s)
					out = toggle(out, index, cand)
				}
				h = height
			}
			h = minInt(h, mod(int(g.O[col])-int(s[ell]), n))
		}
	}

	return out
}

// NewOutOf enumerates outgoing rectangles out of s whose target is not
// already numbered in prevIns, folding duplicate targets within this call
// via mod-2 cancellation (the "new" variant used by the BFS layer driver).
func NewOutOf(g gridstate.Grid, s gridstate.State, prevIns Seen) []gridstate.State {
	n := g.ArcIndex
	var out []gridstate.State
	index := make(map[string]int)
	for ell := 0; ell < n; ell++ {
		h := minInt(mod(int(g.O[ell])-int(s[ell]), n), mod(int(g.X[ell])-int(s[ell]), n))
		for w := 1; w < n && h > 0; w++ {
			col := mod(ell+w, n)
			if mod(int(s[col])-int(s[ell]), n) <= h {
				cand := gridstate.SwapCols(ell, col, s)
				if prevIns == nil || !prevIns.Contains(cand) {
					out = toggle(out, index, cand)
				}
				h = mod(int(s[col])-int(s[ell]), n)
			}
			h = min3(h, mod(int(g.O[col])-int(s[ell]), n), mod(int(g.X[col])-int(s[ell]), n))
		}
	}

	return out
}

// NewInto enumerates incoming rectangles into s whose source is not already
// numbered in prevOuts, folding duplicate sources within this call via
// mod-2 cancellation.
func NewInto(g gridstate.Grid, s gridstate.State, prevOuts Seen) []gridstate.State {
	n := g.ArcIndex
	var out []gridstate.State
	index := make(map[string]int)
	for ell := 0; ell < n; ell++ {
		h := minInt(modUp(int(s[ell])-int(g.O[ell]), n), modUp(int(s[ell])-int(g.X[ell]), n))
		for w := 1; w < n && h > 0; w++ {
			col := mod(ell+w, n)
			if modUp(int(s[ell])-int(s[col]), n) < h {
				cand := gridstate.SwapCols(ell, col, s)
				if prevOuts == nil || !prevOuts.Contains(cand) {
					out = toggle(out, index, cand)
				}
				h = modUp(int(s[ell])-int(s[col]), n)
			}
			h = min3(h, modUp(int(s[ell])-int(g.O[col]), n), modUp(int(s[ell])-int(g.X[col]), n))
		}
	}

	return out
}

// toggle adds cand to out under mod-2 addition: a state already present
// (tracked by index, keyed by its string form) is removed rather than
// duplicated, encoding that two witnesses for the same target cancel.
func toggle(out []gridstate.State, index map[string]int, cand gridstate.State) []gridstate.State {
	key := cand.String()
	if idx, ok := index[key]; ok {
		out = append(out[:idx], out[idx+1:]...)
		delete(index, key)
		for k, v := range index {
			if v > idx {
				index[k] = v - 1
			}
		}

		return out
	}
	index[key] = len(out)

	return append(out, cand)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
