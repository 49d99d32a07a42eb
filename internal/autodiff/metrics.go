package autodiff

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/born-ml/scalargrad/internal/scalar"
)

var (
	// backwardPasses counts completed Backward calls.
	backwardPasses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scalargrad_backward_passes_total",
		Help: "Total backward passes",
	})

	// ruleApplications counts gradient rule invocations by operation.
	ruleApplications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scalargrad_rule_applications_total",
		Help: "Total gradient rule applications by operation",
	}, []string{"op"})

	// backwardGraphNodes tracks the number of nodes ordered per pass.
	backwardGraphNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scalargrad_backward_graph_nodes",
		Help:    "Number of nodes reachable from the backward root",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	})

	// backwardDuration tracks backward pass latency.
	backwardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scalargrad_backward_duration_seconds",
		Help:    "Backward pass duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)

// ruleCounters holds the ruleApplications child for every known op, resolved
// once so the backward loop does no label lookups.
var ruleCounters = func() (c [scalar.Exp + 1]prometheus.Counter) {
	for op := range c {
		c[op] = ruleApplications.WithLabelValues(scalar.Op(op).String())
	}
	return c
}()

// ruleCounter returns the counter for op.
func ruleCounter(op scalar.Op) prometheus.Counter {
	if int(op) < len(ruleCounters) {
		return ruleCounters[op]
	}
	return ruleApplications.WithLabelValues(op.String())
}
