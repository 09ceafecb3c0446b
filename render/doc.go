// Package render formats a grid diagram and a state as the ASCII overlay
// the original CLI printed — one row per height, X/O markings and a state
// marker per column — plus the 2A=M=SL+1 invariant line computed from
// package nesw.
package render
