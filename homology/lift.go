package homology

import (
	"time"

	"github.com/arcknot/gridhfk/bfsgraph"
	"github.com/arcknot/gridhfk/gridlog"
	"github.com/arcknot/gridhfk/gridmetrics"
	"github.com/arcknot/gridhfk/lift"
)

// NullHomologousLift decides whether s is null-homologous in the n-sheet
// branched cover: identical driver structure to NullHomologousD0Q, with
// lift-state enumerators and a tree-backed seen set in place of the
// single-sheet rule.
func NullHomologousLift(g lift.Grid, s lift.State, logger *gridlog.Logger, metrics *gridmetrics.Collector) bool {
	start := time.Now()
	defer func() { metrics.ObserveDecision("Lift", time.Since(start).Seconds()) }()

	kit := bfsgraph.Kit[lift.State]{
		Cmp: func(a, b lift.State) int { return a.Compare(b) },
		NewInto: func(u lift.State, prevOuts bfsgraph.Seen[lift.State]) []lift.State {
			return lift.NewInto(g, u, prevOuts)
		},
		NewOutOf: func(v lift.State, prevIns bfsgraph.Seen[lift.State]) []lift.State {
			return lift.NewOutOf(g, v, prevIns)
		},
	}

	return bfsgraph.Run([]lift.State{s}, kit, logger, metrics, "Lift")
}
