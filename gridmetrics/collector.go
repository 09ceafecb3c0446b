package gridmetrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the metrics for one or more decision runs. A nil
// *Collector is valid and every method becomes a no-op, so callers that
// don't care about metrics can pass nil throughout.
type Collector struct {
	VerticesNumbered *prometheus.CounterVec
	EdgesContracted  prometheus.Counter
	DecisionDuration *prometheus.HistogramVec
}

// NewCollector builds a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		VerticesNumbered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridhfk",
			Name:      "vertices_numbered_total",
			Help:      "Vertices assigned a number during BFS layering, by stream.",
		}, []string{"stream"}),
		EdgesContracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gridhfk",
			Name:      "edges_contracted_total",
			Help:      "Edges eliminated by Gaussian elimination over GF(2).",
		}),
		DecisionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridhfk",
			Name:      "decision_duration_seconds",
			Help:      "Wall-clock time of a top-level null-homologous decision call, by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"proc"}),
	}
	reg.MustRegister(c.VerticesNumbered, c.EdgesContracted, c.DecisionDuration)

	return c
}

// NumberedIn records n newly-numbered in-vertices.
func (c *Collector) NumberedIn(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.VerticesNumbered.WithLabelValues("in").Add(float64(n))
}

// NumberedOut records n newly-numbered out-vertices.
func (c *Collector) NumberedOut(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.VerticesNumbered.WithLabelValues("out").Add(float64(n))
}

// Contracted records one edge-contraction step.
func (c *Collector) Contracted() {
	if c == nil {
		return
	}
	c.EdgesContracted.Inc()
}

// ObserveDecision records the wall-clock duration of one decision call, in
// seconds, labeled by the procedure name ("D0Q", "D1Q", "Lift").
func (c *Collector) ObserveDecision(proc string, seconds float64) {
	if c == nil {
		return
	}
	c.DecisionDuration.WithLabelValues(proc).Observe(seconds)
}
