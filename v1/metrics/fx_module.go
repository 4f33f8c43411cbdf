package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/logger"
)

// FXModule provides *Metrics, exposes it as MetricsCollector and runs the
// metrics server for the lifetime of the application.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		ProvideCollector,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// ProvideCollector exposes m through the MetricsCollector interface.
func ProvideCollector(m *Metrics) MetricsCollector {
	return m
}

// RegisterMetricsLifecycle starts the metrics server on OnStart and shuts it down
// gracefully on OnStop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Error starting Prometheus metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
