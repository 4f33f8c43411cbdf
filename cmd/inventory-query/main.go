// Command inventory-query answers Spanish inventory questions over HTTP.
//
// Usage:
//
//	inventory-query            serve POST /ai/query
//	inventory-query reindex    embed every inventory record into the vector index and exit
package main

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/resguardo/inventory-query/v1/api"
	"github.com/resguardo/inventory-query/v1/config"
	"github.com/resguardo/inventory-query/v1/embedding"
	"github.com/resguardo/inventory-query/v1/executor"
	"github.com/resguardo/inventory-query/v1/inventory"
	"github.com/resguardo/inventory-query/v1/kafka"
	"github.com/resguardo/inventory-query/v1/llm"
	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/metrics"
	"github.com/resguardo/inventory-query/v1/planner"
	"github.com/resguardo/inventory-query/v1/postgres"
	"github.com/resguardo/inventory-query/v1/qdrant"
	"github.com/resguardo/inventory-query/v1/semantic"
	"github.com/resguardo/inventory-query/v1/tracer"
)

const reindexBatchSize = 200

func main() {
	options := []fx.Option{
		config.FXModule,
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		postgres.FXModule,
		inventory.FXModule,
		qdrant.FXModule,
		embedding.FXModule,
		semantic.FXModule,
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Zap}
		}),
	}

	if len(os.Args) > 1 && os.Args[1] == "reindex" {
		options = append(options, fx.Invoke(runReindex))
	} else {
		options = append(options,
			llm.FXModule,
			planner.FXModule,
			executor.FXModule,
			kafka.FXModule,
			api.FXModule,
		)
	}

	fx.New(options...).Run()
}

// runReindex indexes the inventory once the application has started and then
// stops it, exiting non-zero on failure.
func runReindex(lc fx.Lifecycle, shutdowner fx.Shutdowner, svc *semantic.Service, repo *inventory.Repository, log *logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if !svc.Enabled() {
				log.Warn("semantic search is disabled, nothing to reindex", nil)
				return shutdowner.Shutdown()
			}
			go func() {
				n, err := svc.Reindex(ctx, repo, reindexBatchSize)
				if err != nil {
					log.Error("reindex failed", err, map[string]interface{}{"indexed": n})
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				log.Info("reindex finished", nil, map[string]interface{}{"indexed": n})
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
