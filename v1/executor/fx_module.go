package executor

import (
	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/inventory"
	"github.com/resguardo/inventory-query/v1/metrics"
	"github.com/resguardo/inventory-query/v1/semantic"
	"github.com/resguardo/inventory-query/v1/tracer"
)

// FXModule provides the *Executor.
var FXModule = fx.Module("executor",
	fx.Provide(NewExecutorWithDI),
)

// ExecutorParams groups the executor's dependencies for fx.
type ExecutorParams struct {
	fx.In

	Config     Config
	Repository *inventory.Repository
	Semantic   *semantic.Service
	Metrics    metrics.MetricsCollector
	Tracer     *tracer.Tracer
}

// NewExecutorWithDI wires the repository and semantic service into an Executor.
func NewExecutorWithDI(p ExecutorParams) *Executor {
	return NewExecutor(p.Config, p.Repository, p.Semantic, p.Metrics).WithTracer(p.Tracer)
}
