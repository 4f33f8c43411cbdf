package postgres

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/logger"
)

// FXModule provides *Postgres and manages its monitoring goroutines and pool.
var FXModule = fx.Module("postgres",
	fx.Provide(NewPostgresClientWithDI),
	fx.Invoke(RegisterPostgresLifecycle),
)

// PostgresParams groups the dependencies needed to create the client.
type PostgresParams struct {
	fx.In

	Config Config
	Logger *logger.Logger
}

// NewPostgresClientWithDI delegates to NewPostgres with injected dependencies.
func NewPostgresClientWithDI(params PostgresParams) (*Postgres, error) {
	return NewPostgres(params.Config, params.Logger)
}

// PostgresLifeCycleParams groups the dependencies for lifecycle management.
type PostgresLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Postgres  *Postgres
}

// RegisterPostgresLifecycle starts connection monitoring and reconnection on
// start and closes the pool on stop, waiting for both goroutines to exit.
//
// The start context only bounds startup, so the goroutines run on their own
// context that is cancelled on stop.
func RegisterPostgresLifecycle(params PostgresLifeCycleParams) {
	wg := &sync.WaitGroup{}
	runCtx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				params.Postgres.MonitorConnection(runCtx)
			}()
			go func() {
				defer wg.Done()
				params.Postgres.RetryConnection(runCtx)
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			wg.Wait()
			return params.Postgres.GracefulShutdown()
		},
	})
}
