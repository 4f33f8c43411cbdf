package config

import (
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

// ServiceName identifies the process in logs, traces and metrics.
const ServiceName = "inventory-query"

// Config is the complete service configuration. Keys in a YAML file follow the
// yaml tags; environment variables follow the env tags.
type Config struct {
	Logger    logger.Config    `yaml:"logger"`
	Tracer    tracer.Config    `yaml:"tracer"`
	Metrics   metrics.Config   `yaml:"metrics"`
	Postgres  postgres.Config  `yaml:"postgres"`
	Qdrant    qdrant.Config    `yaml:"qdrant"`
	Embedding embedding.Config `yaml:"embedding"`
	LLM       llm.Config       `yaml:"llm"`
	Planner   planner.Config   `yaml:"planner"`
	Semantic  semantic.Config  `yaml:"semantic"`
	Executor  executor.Config  `yaml:"executor"`
	Kafka     kafka.Config     `yaml:"kafka"`
	API       api.Config       `yaml:"api"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: ServiceName,
		},
		Tracer: tracer.Config{
			ServiceName: ServiceName,
			AppEnv:      "development",
			Insecure:    true,
		},
		Metrics: metrics.Config{
			Address:                 metrics.DefaultMetricsAddress,
			EnableDefaultCollectors: true,
			Namespace:               "inventory_query",
			ServiceName:             ServiceName,
		},
		Postgres:  postgres.DefaultConfig(),
		Qdrant:    qdrant.DefaultConfig(),
		Embedding: embedding.DefaultConfig(),
		LLM:       llm.DefaultConfig(),
		Planner:   planner.DefaultConfig(),
		Semantic:  semantic.DefaultConfig(),
		Executor:  executor.DefaultConfig(),
		Kafka:     kafka.DefaultConfig(),
		API:       api.DefaultConfig(),
	}
}
