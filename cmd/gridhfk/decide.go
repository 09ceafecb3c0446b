package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/arcknot/gridhfk/gridlog"
	"github.com/arcknot/gridhfk/gridmetrics"
	"github.com/arcknot/gridhfk/gridparse"
	"github.com/arcknot/gridhfk/gridstate"
	"github.com/arcknot/gridhfk/homology"
	"github.com/arcknot/gridhfk/lift"
	"github.com/arcknot/gridhfk/reduce"
	"github.com/arcknot/gridhfk/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// errTimedOut reports that the wall-clock timeout elapsed before a
// decision finished.
var errTimedOut = errors.New("gridhfk: decision timed out")

func resolveLevel() gridlog.Level {
	switch {
	case flagSilent:
		return gridlog.Silent
	case flagVerbose:
		return gridlog.Verbose
	default:
		return gridlog.Quiet
	}
}

func runDecision(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if errors.Is(asError(r), reduce.ErrInvariantViolated) {
				err = fmt.Errorf("internal invariant violated: %v", r)
				return
			}
			panic(r)
		}
	}()

	if flagArcIndex < 2 {
		return fmt.Errorf("%w: -i must be >= 2", gridstate.ErrArcIndexTooSmall)
	}
	if flagSheets < 1 {
		return fmt.Errorf("%w: -n must be >= 1", lift.ErrSheetsTooFew)
	}

	g, err := gridparse.Grid(flagArcIndex, flagXs, flagOs)
	if err != nil {
		return err
	}

	level := resolveLevel()
	logger := gridlog.New(level, os.Stderr)
	registry := prometheus.NewRegistry()
	metrics := gridmetrics.NewCollector(registry)

	if level == gridlog.Verbose {
		render.Grid(os.Stdout, g, gridstate.LL(g))
		render.Invariants(os.Stdout, g)
	}

	if flagSheets == 1 {
		return decideSingleSheet(g, logger, metrics, level)
	}
	return decideLift(g, logger, metrics, level)
}

func decideSingleSheet(g gridstate.Grid, logger *gridlog.Logger, metrics *gridmetrics.Collector, level gridlog.Level) error {
	ll, ur := gridstate.LL(g), gridstate.UR(g)

	llD0, ok := withTimeout(func() bool { return homology.NullHomologousD0Q(g, ll, logger, metrics) })
	if !ok {
		return errTimedOut
	}
	urD0, ok := withTimeout(func() bool { return homology.NullHomologousD0Q(g, ur, logger, metrics) })
	if !ok {
		return errTimedOut
	}
	llD1, ok := withTimeout(func() bool { return homology.NullHomologousD1Q(g, ll, logger, metrics) })
	if !ok {
		return errTimedOut
	}
	urD1, ok := withTimeout(func() bool { return homology.NullHomologousD1Q(g, ur, logger, metrics) })
	if !ok {
		return errTimedOut
	}

	if level != gridlog.Silent {
		fmt.Println(verdict("LL", llD0))
		fmt.Println(verdict("UR", urD0))
		fmt.Println(verdict("D1[LL]", llD1))
		fmt.Println(verdict("D1[UR]", urD1))
	}
	return nil
}

func decideLift(g gridstate.Grid, logger *gridlog.Logger, metrics *gridmetrics.Collector, level gridlog.Level) error {
	lg := lift.Grid{Grid: g, Sheets: flagSheets}
	seed := lift.UR(lg)

	if err := lift.ValidateLiftState(seed, lg); err != nil {
		return err
	}

	result, ok := withTimeout(func() bool { return homology.NullHomologousLift(lg, seed, logger, metrics) })
	if !ok {
		return errTimedOut
	}

	if level != gridlog.Silent {
		fmt.Println(verdict(fmt.Sprintf("theta_%d", flagSheets), result))
	}
	return nil
}

// verdict renders "name is [NOT ]null-homologous".
func verdict(name string, nullHomologous bool) string {
	if nullHomologous {
		return name + " is null-homologous"
	}
	return name + " is NOT null-homologous"
}

// withTimeout runs fn to completion unless -t seconds elapse first. On
// timeout the goroutine running fn is abandoned, never joined: the core
// holds no external resources that need an orderly unwind.
func withTimeout(fn func() bool) (result bool, ok bool) {
	if flagTimeout <= 0 {
		return fn(), true
	}

	done := make(chan bool, 1)
	go func() { done <- fn() }()

	select {
	case r := <-done:
		return r, true
	case <-time.After(time.Duration(flagTimeout) * time.Second):
		return false, false
	}
}

// asError normalizes a recover() value into an error for errors.Is checks.
func asError(r interface{}) error {
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}
