package gridlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with the three-level verbosity the decision
// procedures expect. A nil *Logger is valid and behaves as Silent, so every
// package that threads a logger through its call chain can skip a nil check
// at every call site and instead rely on the methods below being no-ops.
type Logger struct {
	level Level
	zl    zerolog.Logger
}

// New builds a Logger writing to w at the given level. A nil w defaults to
// os.Stderr.
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	switch level {
	case Verbose:
		zl = zl.Level(zerolog.DebugLevel)
	case Quiet:
		zl = zl.Level(zerolog.InfoLevel)
	default:
		zl = zl.Level(zerolog.Disabled)
	}
	return &Logger{level: level, zl: zl}
}

// Level reports the configured verbosity, treating a nil receiver as Silent.
func (l *Logger) Level() Level {
	if l == nil {
		return Silent
	}
	return l.level
}

// Progress logs a single BFS-layer step: the running vertex counts and the
// current size of the edge list. Only emitted at Verbose.
func (l *Logger) Progress(proc string, numIns, numOuts, numEdges int) {
	if l == nil || l.level < Verbose {
		return
	}
	l.zl.Debug().
		Str("proc", proc).
		Int("ins", numIns).
		Int("outs", numOuts).
		Int("edges", numEdges).
		Msg("layer expanded")
}

// Contraction logs a single Gaussian-elimination step on the edge list.
// Only emitted at Verbose, once per contraction: no sampling or
// throttling is applied (the original source reported progress every 100
// contractions); callers that want throttling can wrap this in their own
// modulo check.
func (l *Logger) Contraction(remaining int) {
	if l == nil || l.level < Verbose {
		return
	}
	l.zl.Debug().Int("remaining", remaining).Msg("edge contracted")
}

// Result logs the final decision. Emitted at Quiet and Verbose.
func (l *Logger) Result(proc string, nullHomologous bool) {
	if l == nil || l.level < Quiet {
		return
	}
	l.zl.Info().Str("proc", proc).Bool("null_homologous", nullHomologous).Msg("decision")
}
