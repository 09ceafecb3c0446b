// SPDX-License-Identifier: MIT

package gridparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcknot/gridhfk/gridstate"
)

// Permutation parses "[v1,v2,...,vN]" into a gridstate.State. It does not
// check that the result is actually a permutation of 1..N; callers compose
// it with gridstate.ValidateGrid for that.
func Permutation(s string) (gridstate.State, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, ErrMissingBrackets
	}
	body := s[1 : len(s)-1]
	if body == "" {
		return gridstate.State{}, nil
	}

	parts := strings.Split(body, ",")
	out := make(gridstate.State, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, ErrEmptyEntry
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotInteger, p)
		}
		out[i] = int16(n)
	}

	return out, nil
}

// Grid parses X and O permutation strings and an arc index into a
// gridstate.Grid, validating the result with gridstate.ValidateGrid.
func Grid(arcIndex int, xs, os string) (gridstate.Grid, error) {
	x, err := Permutation(xs)
	if err != nil {
		return gridstate.Grid{}, fmt.Errorf("X: %w", err)
	}
	o, err := Permutation(os)
	if err != nil {
		return gridstate.Grid{}, fmt.Errorf("O: %w", err)
	}
	g := gridstate.Grid{ArcIndex: arcIndex, X: x, O: o}
	if err := gridstate.ValidateGrid(g); err != nil {
		return gridstate.Grid{}, err
	}

	return g, nil
}
