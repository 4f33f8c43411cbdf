package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns an isolated Prometheus registry, the service's built-in collectors
// and the HTTP server that exposes them.
type Metrics struct {
	// Server serves the registry on Config.Address. Started by the fx lifecycle.
	Server *http.Server

	// Registry holds every collector registered through this instance.
	Registry *prometheus.Registry

	namespace string

	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	plansTotal         *prometheus.CounterVec
	queriesTotal       *prometheus.CounterVec
	queryDuration      *prometheus.HistogramVec
	semanticCandidates *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the built-in collectors and prepares
// (but does not start) the metrics server.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:  registry,
		namespace: cfg.Namespace,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "requests_total", "Total number of processed requests", []string{"status"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.plansTotal = createCounterVec(cfg.Namespace, "plans_total", "Query plans produced, by planner path", []string{"source"})
	m.queriesTotal = createCounterVec(cfg.Namespace, "queries_total", "Executed query plans, by intent and outcome", []string{"intent", "outcome"})
	m.queryDuration = createHistogramVec(cfg.Namespace, "query_duration_seconds", "Plan execution time in seconds", []string{"intent"}, prometheus.DefBuckets)
	m.semanticCandidates = createHistogramVec(cfg.Namespace, "semantic_candidates", "Candidate ids returned by similarity search", []string{"collection"}, []float64{0, 1, 5, 10, 25, 50, 100})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.plansTotal,
		m.queriesTotal,
		m.queryDuration,
		m.semanticCandidates,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	m.Server = &http.Server{
		Addr:    address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}
