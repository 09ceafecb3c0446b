// Package gridmetrics exposes the prometheus instrumentation threaded
// through a decision run: how many vertices each BFS layer numbers, how
// many edges get contracted, and how long a top-level decision call takes.
package gridmetrics
