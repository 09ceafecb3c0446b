package rectangle_test

import (
	"testing"

	"github.com/arcknot/gridhfk/gridstate"
	"github.com/arcknot/gridhfk/rectangle"
)

func unknot() gridstate.Grid {
	return gridstate.Grid{ArcIndex: 2, X: gridstate.State{1, 2}, O: gridstate.State{2, 1}}
}

func trefoil() gridstate.Grid {
	return gridstate.Grid{
		ArcIndex: 5,
		X:        gridstate.State{1, 2, 3, 4, 5},
		O:        gridstate.State{2, 3, 4, 5, 1},
	}
}

func contains(states []gridstate.State, t gridstate.State) bool {
	for _, s := range states {
		if s.Equal(t) {
			return true
		}
	}

	return false
}

// TestSymmetry verifies the round-trip law from the spec: t is an outgoing
// rectangle target of s iff s is an incoming rectangle source of t.
func TestSymmetry(t *testing.T) {
	g := trefoil()
	s := gridstate.LL(g)
	for _, target := range rectangle.OutOf(g, s) {
		if !contains(rectangle.Into(g, target), s) {
			t.Errorf("OutOf/Into asymmetry: %v -> %v not reciprocated", s, target)
		}
	}
}

// TestBoundaryN2 verifies at most one rectangle per starting column for the
// minimal nontrivial grid.
func TestBoundaryN2(t *testing.T) {
	g := unknot()
	s := gridstate.LL(g)
	out := rectangle.OutOf(g, s)
	if len(out) > g.ArcIndex {
		t.Errorf("N=2 OutOf produced %d rectangles; want <= %d", len(out), g.ArcIndex)
	}
	in := rectangle.Into(g, s)
	if len(in) > g.ArcIndex {
		t.Errorf("N=2 Into produced %d rectangles; want <= %d", len(in), g.ArcIndex)
	}
}

// TestNewOutOfFiltersSeen verifies the "new" variant excludes states already
// numbered.
type fakeSeen struct{ states []gridstate.State }

func (f fakeSeen) Contains(s gridstate.State) bool {
	for _, x := range f.states {
		if x.Equal(s) {
			return true
		}
	}

	return false
}

func TestNewOutOfFiltersSeen(t *testing.T) {
	g := trefoil()
	// LL has no outgoing rectangle (each contains the X of its own
	// column), so the source is a state that has some.
	s := gridstate.State{4, 5, 3, 2, 1}
	all := rectangle.OutOf(g, s)
	if len(all) == 0 {
		t.Fatalf("expected at least one outgoing rectangle from %v", s)
	}
	seen := fakeSeen{states: []gridstate.State{all[0]}}
	filtered := rectangle.NewOutOf(g, s, seen)
	if contains(filtered, all[0]) {
		t.Errorf("NewOutOf should exclude already-seen state %v", all[0])
	}
}

func TestFixedWeightOutOf(t *testing.T) {
	g := trefoil()
	s := gridstate.LL(g)
	wt1 := rectangle.FixedWeightOutOf(g, 1, s)
	// A weight-1 rectangle holds an X, so it is never among OutOf's X-free
	// rectangles. Out of LL these are the five unit squares whose lower-left
	// corner is a point of LL, each holding the X of its own column.
	want := []gridstate.State{{2, 1, 3, 4, 5}, {1, 3, 2, 4, 5}, {1, 2, 4, 3, 5}, {1, 2, 3, 5, 4}, {5, 2, 3, 4, 1}}
	if len(wt1) != len(want) {
		t.Fatalf("FixedWeightOutOf produced %d candidates %v; want %d", len(wt1), wt1, len(want))
	}
	for _, c := range wt1 {
		if !contains(want, c) {
			t.Errorf("FixedWeightOutOf produced %v not in %v", c, want)
		}
	}
}
