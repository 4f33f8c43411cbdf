package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/executor"
	"github.com/resguardo/inventory-query/v1/kafka"
	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/metrics"
	"github.com/resguardo/inventory-query/v1/planner"
	"github.com/resguardo/inventory-query/v1/postgres"
	"github.com/resguardo/inventory-query/v1/semantic"
	"github.com/resguardo/inventory-query/v1/tracer"
)

// FXModule provides the *Server and runs its HTTP listener for the lifetime of
// the application.
var FXModule = fx.Module("api",
	fx.Provide(NewServerWithDI),
	fx.Invoke(RegisterServerLifecycle),
)

// ServerParams groups the server's dependencies for fx.
type ServerParams struct {
	fx.In

	Config        Config
	PlannerConfig planner.Config
	Planner       *planner.Planner
	Executor      *executor.Executor
	Semantic      *semantic.Service
	Producer      *kafka.Producer
	Postgres      *postgres.Postgres
	Logger        *logger.Logger
	Metrics       metrics.MetricsCollector
	Tracer        *tracer.Tracer
}

// NewServerWithDI builds the server from container dependencies.
func NewServerWithDI(p ServerParams) *Server {
	features := Features{
		LLMPlanner:     p.PlannerConfig.LLMEnabled,
		SemanticSearch: p.Semantic.Enabled(),
		DefaultTopK:    p.PlannerConfig.DefaultTopK,
	}
	s := NewServer(p.Config, p.Planner, p.Executor, p.Postgres, p.Logger, p.Metrics, features).
		WithTracer(p.Tracer).
		WithVectorIndex(p.Semantic)
	if p.Producer != nil {
		s.WithPublisher(p.Producer)
	}
	return s
}

// RegisterServerLifecycle binds the listener on start, so a busy port fails
// startup, and drains in-flight requests on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	srv := s.HTTPServer()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", nil, map[string]interface{}{
				"address": ln.Addr().String(),
			})
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped unexpectedly", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HTTP server", nil, nil)
			if s.cfg.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
				defer cancel()
			}
			return srv.Shutdown(ctx)
		},
	})
}
