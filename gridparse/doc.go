// SPDX-License-Identifier: MIT

// Package gridparse parses the bracketed permutation syntax the CLI
// accepts for X and O markings — "[v1,v2,...,vN]", integers 1..N — into
// gridstate.State, and assembles/validates the resulting Grid.
package gridparse
