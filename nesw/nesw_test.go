package nesw_test

import (
	"testing"

	"github.com/arcknot/gridhfk/gridstate"
	"github.com/arcknot/gridhfk/nesw"
)

func TestPPCountsStrictAscendingPairs(t *testing.T) {
	x := gridstate.State{1, 2, 3}
	// i<=j pairs with x[i]<x[j]: (0,1),(0,2),(1,2) = 3
	if got := nesw.PP(x); got != 3 {
		t.Errorf("PP = %d; want 3", got)
	}
}

func TestPPOnDescendingIsZero(t *testing.T) {
	x := gridstate.State{3, 2, 1}
	if got := nesw.PP(x); got != 0 {
		t.Errorf("PP = %d; want 0", got)
	}
}

func TestSelfLinkingPlusOneOnUnknot(t *testing.T) {
	g := gridstate.Grid{ArcIndex: 2, X: gridstate.State{1, 2}, O: gridstate.State{2, 1}}
	// PP(X)=1 ((0,1): 1<2), PO(X,O): pairs i<=j with X[i]<=O[j]:
	// (0,0):1<=2 yes;(0,1):1<=1 yes;(1,1):2<=1 no => 2.
	// OP(O,X): i<j with O[i]<X[j]: (0,1): O[0]=2<X[1]=2? no => 0.
	// PP(O)=0 (O={2,1} strictly descending).
	// total = 1 - 2 - 0 + 0 + 1 = 0
	if got := nesw.SelfLinkingPlusOne(g); got != 0 {
		t.Errorf("SelfLinkingPlusOne = %d; want 0", got)
	}
}
