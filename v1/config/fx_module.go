package config

import (
	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/api"
	"github.com/resguardo/inventory-query/v1/embedding"
	"github.com/resguardo/inventory-query/v1/executor"
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

// FXModule loads the configuration once and provides each package's Config.
var FXModule = fx.Module("config",
	fx.Provide(
		Load,
		Split,
	),
)

// Sections exposes every sub-configuration to the container.
type Sections struct {
	fx.Out

	Logger    logger.Config
	Tracer    tracer.Config
	Metrics   metrics.Config
	Postgres  postgres.Config
	Qdrant    qdrant.Config
	Embedding embedding.Config
	LLM       llm.Config
	Planner   planner.Config
	Semantic  semantic.Config
	Executor  executor.Config
	Kafka     kafka.Config
	API       api.Config
}

// Split provides the sections of cfg.
func Split(cfg Config) Sections {
	return Sections{
		Logger:    cfg.Logger,
		Tracer:    cfg.Tracer,
		Metrics:   cfg.Metrics,
		Postgres:  cfg.Postgres,
		Qdrant:    cfg.Qdrant,
		Embedding: cfg.Embedding,
		LLM:       cfg.LLM,
		Planner:   cfg.Planner,
		Semantic:  cfg.Semantic,
		Executor:  cfg.Executor,
		Kafka:     cfg.Kafka,
		API:       cfg.API,
	}
}
