package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/logger"
)

// FXModule provides *Tracer and flushes it on shutdown.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewTracerWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// NewTracerWithDI adapts NewClient to the container's concrete logger.
func NewTracerWithDI(cfg Config, log *logger.Logger) *Tracer {
	return NewClient(cfg, log)
}

func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
