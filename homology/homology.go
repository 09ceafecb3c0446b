package homology

import (
	"time"

	"github.com/arcknot/gridhfk/bfsgraph"
	"github.com/arcknot/gridhfk/gridlog"
	"github.com/arcknot/gridhfk/gridmetrics"
	"github.com/arcknot/gridhfk/gridstate"
	"github.com/arcknot/gridhfk/rectangle"
)

func stateCmp(a, b gridstate.State) int { return a.Compare(b) }

func stateKit() bfsgraph.Kit[gridstate.State] {
	return bfsgraph.Kit[gridstate.State]{Cmp: stateCmp}
}

func wireRectangleEnumerators(g gridstate.Grid, kit bfsgraph.Kit[gridstate.State]) bfsgraph.Kit[gridstate.State] {
	kit.NewInto = func(u gridstate.State, prevOuts bfsgraph.Seen[gridstate.State]) []gridstate.State {
		return rectangle.NewInto(g, u, prevOuts)
	}
	kit.NewOutOf = func(v gridstate.State, prevIns bfsgraph.Seen[gridstate.State]) []gridstate.State {
		return rectangle.NewOutOf(g, v, prevIns)
	}

	return kit
}

// NullHomologousD0Q decides whether s is null-homologous under the D0
// chain map: the BFS layer driver is seeded with the single in-vertex s
// and the edge (0,1).
func NullHomologousD0Q(g gridstate.Grid, s gridstate.State, logger *gridlog.Logger, metrics *gridmetrics.Collector) bool {
	start := time.Now()
	defer func() { metrics.ObserveDecision("D0Q", time.Since(start).Seconds()) }()

	kit := wireRectangleEnumerators(g, stateKit())

	return bfsgraph.Run([]gridstate.State{s}, kit, logger, metrics, "D0Q")
}

// NullHomologousD1Q decides whether s is null-homologous under the D1
// chain map: the BFS layer driver is seeded with the weight-1 outgoing
// rectangles from s, one in-vertex per target, edges (0,1)..(0,k). If s
// has no weight-1 outgoing rectangles, the driver is seeded with an empty
// frontier and the edge list starts empty (no placeholder edge), matching
// the case where D1 has nothing to differentiate.
func NullHomologousD1Q(g gridstate.Grid, s gridstate.State, logger *gridlog.Logger, metrics *gridmetrics.Collector) bool {
	start := time.Now()
	defer func() { metrics.ObserveDecision("D1Q", time.Since(start).Seconds()) }()

	kit := wireRectangleEnumerators(g, stateKit())
	seeds := rectangle.FixedWeightOutOf(g, 1, s)

	return bfsgraph.Run(seeds, kit, logger, metrics, "D1Q")
}
