package lift

import (
	"errors"

	"github.com/arcknot/gridhfk/gridstate"
)

// Sentinel errors for lift-grid and lift-state validation.
var (
	// ErrSheetsTooFew indicates a cover with fewer than 1 sheet.
	ErrSheetsTooFew = errors.New("lift: sheets must be >= 1")

	// ErrSheetCountMismatch indicates a lift state whose sheet count
	// differs from the lift grid's.
	ErrSheetCountMismatch = errors.New("lift: state sheet count does not match grid")
)

// Grid extends a single-sheet grid diagram with the number of sheets of
// its cyclic branched cover.
type Grid struct {
	gridstate.Grid
	Sheets int
}

// State is one ordinary state per sheet of the cover.
type State []gridstate.State

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	for i, sheet := range s {
		out[i] = sheet.Clone()
	}

	return out
}

// Equal reports whether s and t agree on every sheet.
func (s State) Equal(t State) bool {
	return s.Compare(t) == 0
}

// Compare implements the lexicographic order across sheets: the first
// sheet at which s and t differ decides the result, matching
// comp_lift_state's per-sheet strncmp chain.
func (s State) Compare(t State) int {
	n := len(s)
	if len(t) < n {
		n = len(t)
	}
	for i := 0; i < n; i++ {
		if c := s[i].Compare(t[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(s) < len(t):
		return -1
	case len(s) > len(t):
		return 1
	default:
		return 0
	}
}

// String renders s as the concatenation of each sheet's rendering.
func (s State) String() string {
	out := make([]byte, 0, 8*len(s))
	for i, sheet := range s {
		if i > 0 {
			out = append(out, '|')
		}
		out = append(out, sheet.String()...)
	}

	return string(out)
}

// IsLiftGrid reports whether g is well-formed: at least one sheet, and the
// underlying single-sheet grid is itself well-formed.
func IsLiftGrid(g Grid) bool {
	return g.Sheets >= 1 && gridstate.IsGrid(g.Grid)
}

// IsLiftState reports whether s is a well-formed state of g: one
// well-formed state per sheet.
func IsLiftState(s State, g Grid) bool {
	if len(s) != g.Sheets {
		return false
	}
	for _, sheet := range s {
		if !gridstate.IsState(sheet, g.Grid) {
			return false
		}
	}

	return true
}

// ValidateLiftGrid is the error-returning counterpart of IsLiftGrid.
func ValidateLiftGrid(g Grid) error {
	if g.Sheets < 1 {
		return ErrSheetsTooFew
	}

	return gridstate.ValidateGrid(g.Grid)
}

// ValidateLiftState is the error-returning counterpart of IsLiftState.
func ValidateLiftState(s State, g Grid) error {
	if len(s) != g.Sheets {
		return ErrSheetCountMismatch
	}
	for _, sheet := range s {
		if !gridstate.IsState(sheet, g.Grid) {
			return gridstate.ErrNotPermutation
		}
	}

	return nil
}

// LL returns the canonical lower-left lift state: every sheet initialized
// to the base grid's LL state.
func LL(g Grid) State {
	out := make(State, g.Sheets)
	for i := range out {
		out[i] = gridstate.LL(g.Grid)
	}

	return out
}

// UR returns the canonical upper-right lift state: every sheet initialized
// to the base grid's UR shift state. This is the generator the original
// seeds theta_n with (main.c's UR_lift), as opposed to LL.
func UR(g Grid) State {
	out := make(State, g.Sheets)
	for i := range out {
		out[i] = gridstate.UR(g.Grid)
	}

	return out
}
