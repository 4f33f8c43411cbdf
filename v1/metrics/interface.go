package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is the contract consumers depend on. *Metrics implements it.
type MetricsCollector interface {
	// IncrementRequests counts a processed HTTP request by status class.
	IncrementRequests(status string)

	// RecordRequestDuration observes the time since start for an endpoint.
	RecordRequestDuration(start time.Time, endpoint string)

	// IncrementPlans counts a produced plan by the planner path that built it.
	IncrementPlans(source string)

	// RecordQuery counts an executed plan and observes its duration.
	RecordQuery(start time.Time, intent, outcome string)

	// ObserveSemanticCandidates records how many ids a similarity search returned.
	ObserveSemanticCandidates(collection string, n int)

	// CreateCounter registers a namespaced counter owned by another package.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateGauge registers a namespaced gauge owned by another package.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
