package seenset

import "github.com/arcknot/gridhfk/gridstate"

// Set is a Tree specialized to single-sheet states, satisfying the
// rectangle.Seen interface so it can be passed directly to
// rectangle.NewOutOf and rectangle.NewInto.
type Set struct {
	*Tree[gridstate.State]
}

// NewSet builds an empty single-sheet seen set.
func NewSet() *Set {
	return &Set{Tree: New(func(a, b gridstate.State) int { return a.Compare(b) })}
}
