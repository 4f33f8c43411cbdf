package semantic

import (
	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/embedding"
	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/metrics"
	"github.com/resguardo/inventory-query/v1/qdrant"
	"github.com/resguardo/inventory-query/v1/tracer"
	"github.com/resguardo/inventory-query/v1/vectordb"
)

// FXModule provides the *Service.
var FXModule = fx.Module("semantic",
	fx.Provide(NewServiceWithDI),
)

// ServiceParams groups the service's dependencies for fx. Embedding and
// Qdrant are nil when their endpoints are not configured.
type ServiceParams struct {
	fx.In

	Config    Config
	Embedding *embedding.Client
	Qdrant    *qdrant.Client
	Logger    *logger.Logger
	Metrics   metrics.MetricsCollector
	Tracer    *tracer.Tracer
}

// NewServiceWithDI builds the service, keeping nil clients out of the
// interfaces so Enabled sees them as absent.
func NewServiceWithDI(p ServiceParams) *Service {
	var embedder Embedder
	if p.Embedding != nil {
		embedder = p.Embedding
	}
	var index vectordb.Service
	if p.Qdrant != nil {
		index = p.Qdrant
	}

	s := NewService(p.Config, embedder, index, p.Logger, p.Metrics).
		WithTracer(p.Tracer).
		WithPointsGauge(p.Metrics.CreateGauge(
			"vector_index_points", "Points stored in the vector collection, as of the last health check.", []string{"collection"},
		))
	if p.Config.Enabled && !s.Enabled() {
		p.Logger.Warn("semantic search enabled but embedding or qdrant is not configured", nil)
	}
	return s
}
