// SPDX-License-Identifier: MIT

package gridparse

import "errors"

var (
	// ErrMissingBrackets indicates the input does not begin with '[' and
	// end with ']'.
	ErrMissingBrackets = errors.New("gridparse: permutation must be enclosed in [ ]")

	// ErrEmptyEntry indicates a comma-separated slot with no digits.
	ErrEmptyEntry = errors.New("gridparse: empty entry between commas")

	// ErrNotInteger indicates an entry that is not a base-10 integer.
	ErrNotInteger = errors.New("gridparse: entry is not an integer")
)
