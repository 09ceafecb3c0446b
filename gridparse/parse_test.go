package gridparse_test

import (
	"errors"
	"testing"

	"github.com/arcknot/gridhfk/gridparse"
	"github.com/arcknot/gridhfk/gridstate"
)

func TestPermutationRoundTripsStateString(t *testing.T) {
	want := gridstate.State{1, 2, 3, 4, 5}
	got, err := gridparse.Permutation(want.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("Permutation(%q) = %v; want %v", want.String(), got, want)
	}
}

func TestPermutationRejectsMissingBrackets(t *testing.T) {
	if _, err := gridparse.Permutation("1,2,3"); !errors.Is(err, gridparse.ErrMissingBrackets) {
		t.Errorf("expected ErrMissingBrackets, got %v", err)
	}
}

func TestPermutationRejectsNonInteger(t *testing.T) {
	if _, err := gridparse.Permutation("[1,x,3]"); !errors.Is(err, gridparse.ErrNotInteger) {
		t.Errorf("expected ErrNotInteger, got %v", err)
	}
}

func TestPermutationRejectsEmptyEntry(t *testing.T) {
	if _, err := gridparse.Permutation("[1,,3]"); !errors.Is(err, gridparse.ErrEmptyEntry) {
		t.Errorf("expected ErrEmptyEntry, got %v", err)
	}
}

func TestGridParsesAndValidates(t *testing.T) {
	g, err := gridparse.Grid(2, "[1,2]", "[2,1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ArcIndex != 2 || !g.X.Equal(gridstate.State{1, 2}) || !g.O.Equal(gridstate.State{2, 1}) {
		t.Errorf("unexpected grid: %+v", g)
	}
}

func TestGridRejectsColumnCollision(t *testing.T) {
	_, err := gridparse.Grid(2, "[1,2]", "[1,2]")
	if !errors.Is(err, gridstate.ErrColumnCollision) {
		t.Errorf("expected ErrColumnCollision, got %v", err)
	}
}
