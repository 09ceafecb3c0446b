// Package lift implements the n-sheet branched-cover extension of a grid
// state: a lift state is one ordinary state per sheet, and an empty
// rectangle acts on a single sheet at a time. The original source declares
// the LiftGrid/LiftState shapes (states.h) but never wires a sheet-crossing
// rule to them, so the rule here is this module's own resolution: a
// rectangle that does not touch column 0 — the designated basepoint column
// — lifts to n independent in-sheet transitions, one per sheet, each
// identical to the single-sheet move; a rectangle that does touch column 0
// crosses the branch cut, and its image is written into the next sheet
// (mod n) instead of the sheet it was computed on, leaving that sheet's own
// entry untouched. See DESIGN.md for the open-question record.
package lift
