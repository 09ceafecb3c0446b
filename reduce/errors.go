package reduce

import "errors"

// ErrInvariantViolated indicates SpecialHomology was handed a non-empty
// edge list whose head does not start at the sentinel vertex. This can
// only happen if a caller bypassed the BFS layer driver and fed reduce an
// edge list in a state it never produces itself; the original source
// printed a diagnostic and kept going, but a silently-corrupted edge list
// is a bug, not a recoverable condition, so this is promoted to a panic.
var ErrInvariantViolated = errors.New("reduce: edge list does not start at sentinel vertex")
