package bfsgraph

import (
	"github.com/arcknot/gridhfk/chainedge"
	"github.com/arcknot/gridhfk/gridlog"
	"github.com/arcknot/gridhfk/gridmetrics"
	"github.com/arcknot/gridhfk/reduce"
	"github.com/arcknot/gridhfk/seenset"
)

type numbered[V any] struct {
	state V
	num   int
}

// Run drives the BFS layering to a null-homologous decision. seedIns are
// the initial in-vertices (numbered 1..len(seedIns)); the sentinel vertex
// 0 starts with an edge to each of them. proc names the caller for
// progress logging.
func Run[V any](seedIns []V, kit Kit[V], logger *gridlog.Logger, metrics *gridmetrics.Collector, proc string) bool {
	numIns := len(seedIns)
	numOuts := 0

	var edges chainedge.List
	inFrontier := make([]numbered[V], len(seedIns))
	for i, s := range seedIns {
		inFrontier[i] = numbered[V]{state: s, num: i + 1}
		edges = chainedge.AppendOrdered(0, i+1, edges)
	}

	prevIns := seenset.New(kit.Cmp)
	prevOuts := seenset.New(kit.Cmp)

	for {
		// Stage a: new out-vertices reachable into the current in-frontier.
		layerOuts := seenset.New(kit.Cmp)
		localOutNo := 0
		var outFrontier []numbered[V]
		for _, u := range inFrontier {
			for _, w := range kit.NewInto(u.state, prevOuts) {
				tag, inserted := layerOuts.Insert(w, numOuts+localOutNo+1)
				if inserted {
					localOutNo++
					outFrontier = append(outFrontier, numbered[V]{state: w, num: tag})
				}
				edges = chainedge.AppendOrdered(tag, u.num, edges)
			}
		}
		numOuts += localOutNo
		metrics.NumberedOut(localOutNo)

		// Step b: promote the in-frontier — prevIns becomes exactly the
		// frontier just consumed, not the union of every layer seen so
		// far, matching the original's FreeStateList(PrevIns);
		// PrevIns = NewIns replacement rather than an accumulation.
		prevIns = seenset.New(kit.Cmp)
		for _, u := range inFrontier {
			prevIns.Insert(u.state, u.num)
		}
		prevNumIns := numIns
		logger.Progress(proc, numIns, numOuts, len(edges))

		// Stage c: new in-vertices reachable out of the fresh out-frontier.
		layerIns := seenset.New(kit.Cmp)
		localInNo := 0
		var inFrontierNext []numbered[V]
		for _, v := range outFrontier {
			for _, w := range kit.NewOutOf(v.state, prevIns) {
				tag, inserted := layerIns.Insert(w, numIns+localInNo+1)
				if inserted {
					localInNo++
					inFrontierNext = append(inFrontierNext, numbered[V]{state: w, num: tag})
				}
				edges = chainedge.AppendOrdered(v.num, tag, edges)
			}
		}
		numIns += localInNo
		metrics.NumberedIn(localInNo)

		// Step d: promote the out-frontier — same replace-not-accumulate
		// rule as step b.
		prevOuts = seenset.New(kit.Cmp)
		for _, v := range outFrontier {
			prevOuts.Insert(v.state, v.num)
		}

		// Step e: reduce.
		edges = reduce.SpecialHomology(0, prevNumIns, edges, logger, metrics)

		// Step f: termination tests.
		head, ok := edges.Head()
		if !ok || head.Start != 0 {
			logger.Result(proc, true)
			return true
		}
		if head.End <= prevNumIns {
			logger.Result(proc, false)
			return false
		}

		if len(inFrontierNext) == 0 {
			logger.Result(proc, false)
			return false
		}
		inFrontier = inFrontierNext
	}
}
