// Package metrics provides Prometheus-based monitoring for the inventory query
// service.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: the contract consumers depend on
//   - Metrics struct: concrete implementation backed by an isolated registry
//   - NewMetrics constructor: returns *Metrics
//   - FXModule: provides both *Metrics and MetricsCollector, and runs the server
//
// Every metric carries a "service" label taken from Config.ServiceName.
//
// # Built-in metrics
//
//   - requests_total{status}: HTTP requests by status class
//   - request_duration_seconds{endpoint}: HTTP latency
//   - plans_total{source}: plans by planner path (heuristic, llm, llm_fallback)
//   - queries_total{intent,outcome}: executed plans
//   - query_duration_seconds{intent}: execution latency
//   - semantic_candidates{collection}: ids returned by similarity search
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "inventory-query"})
//	go m.Server.ListenAndServe()
//
//	m.IncrementPlans("heuristic")
//	defer m.RecordRequestDuration(time.Now(), "/ai/query")
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=inventory
//	METRICS_SERVICE_NAME=inventory-query
//
// All methods on Metrics are safe for concurrent use.
package metrics
