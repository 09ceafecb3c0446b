package chainedge_test

import (
	"testing"

	"github.com/arcknot/gridhfk/chainedge"
)

func TestAppendOrdered(t *testing.T) {
	var l chainedge.List
	l = chainedge.AppendOrdered(2, 3, l)
	l = chainedge.AppendOrdered(1, 5, l)
	l = chainedge.AppendOrdered(2, 1, l)
	if !l.IsOrdered() {
		t.Fatalf("list not ordered: %v", l)
	}
	want := chainedge.List{{1, 5}, {2, 1}, {2, 3}}
	if len(l) != len(want) {
		t.Fatalf("len = %d; want %d", len(l), len(want))
	}
	for i := range want {
		if l[i] != want[i] {
			t.Errorf("l[%d] = %v; want %v", i, l[i], want[i])
		}
	}
}

func TestAddModTwoRoundTrip(t *testing.T) {
	var l chainedge.List
	l = chainedge.AppendOrdered(0, 1, l)
	before := append(chainedge.List{}, l...)
	l = chainedge.AddModTwo(5, 7, l)
	l = chainedge.AddModTwo(5, 7, l)
	if len(l) != len(before) {
		t.Fatalf("AddModTwo(AddModTwo(E)) changed length: %v vs %v", l, before)
	}
	for i := range before {
		if l[i] != before[i] {
			t.Errorf("round trip mismatch at %d: %v vs %v", i, l[i], before[i])
		}
	}
}

func TestAddModTwoInsertAndRemove(t *testing.T) {
	var l chainedge.List
	l = chainedge.AddModTwo(1, 1, l)
	if !l.Contains(chainedge.Edge{1, 1}) {
		t.Fatalf("expected edge present after first toggle")
	}
	l = chainedge.AddModTwo(1, 1, l)
	if l.Contains(chainedge.Edge{1, 1}) {
		t.Fatalf("expected edge absent after second toggle")
	}
}

func TestAddModTwoListsCrossProduct(t *testing.T) {
	var l chainedge.List
	parents := []int{1, 2}
	kids := []int{10, 20}
	l = chainedge.AddModTwoLists(l, parents, kids)
	if !l.IsOrdered() {
		t.Fatalf("result not ordered: %v", l)
	}
	want := chainedge.List{{1, 10}, {1, 20}, {2, 10}, {2, 20}}
	if len(l) != len(want) {
		t.Fatalf("len = %d; want %d (%v)", len(l), len(want), l)
	}
	for i := range want {
		if l[i] != want[i] {
			t.Errorf("l[%d] = %v; want %v", i, l[i], want[i])
		}
	}
	// XOR the same product again: should cancel back to empty
	l = chainedge.AddModTwoLists(l, parents, kids)
	if len(l) != 0 {
		t.Errorf("expected empty list after symmetric-difference round trip, got %v", l)
	}
}

func TestAddModTwoListsPreservesUnrelatedEdges(t *testing.T) {
	l := chainedge.List{{0, 1}, {3, 99}}
	l = chainedge.AddModTwoLists(l, []int{1}, []int{2})
	if !l.IsOrdered() {
		t.Fatalf("result not ordered: %v", l)
	}
	if !l.Contains(chainedge.Edge{0, 1}) || !l.Contains(chainedge.Edge{3, 99}) || !l.Contains(chainedge.Edge{1, 2}) {
		t.Errorf("expected original edges preserved plus new pair, got %v", l)
	}
}
