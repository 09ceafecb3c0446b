// Package nesw implements the NESW corner-counting functions used to
// derive the Maslov grading and self-linking number of a grid generator:
// for a pair of markings (x,y), count how many (row,column) pairs have x
// to the northeast or southwest of a y-marking. Columns and heights are
// compared as plain integers, without torus wraparound.
package nesw
