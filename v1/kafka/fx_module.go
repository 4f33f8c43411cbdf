package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/metrics"
)

// FXModule provides the *Producer. With no brokers configured the provided
// producer is nil and query events are not published.
var FXModule = fx.Module("kafka",
	fx.Provide(NewProducerWithDI),
	fx.Invoke(RegisterProducerLifecycle),
)

// ProducerParams groups the producer's dependencies for fx.
type ProducerParams struct {
	fx.In

	Config  Config
	Logger  *logger.Logger
	Metrics metrics.MetricsCollector
}

func NewProducerWithDI(p ProducerParams) (*Producer, error) {
	if len(p.Config.Brokers) == 0 {
		p.Logger.Info("kafka brokers not configured, query events disabled", nil)
		return nil, nil
	}
	producer, err := NewProducer(p.Config, p.Logger)
	if err != nil {
		return nil, err
	}
	return producer.WithCounter(p.Metrics.CreateCounter(
		"query_events_total", "Query events handed to Kafka by outcome.", []string{"outcome"},
	)), nil
}

// RegisterProducerLifecycle flushes and closes the producer on stop.
func RegisterProducerLifecycle(lc fx.Lifecycle, producer *Producer, log *logger.Logger) {
	if producer == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("kafka producer ready", nil, map[string]interface{}{"topic": producer.topic})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("closing kafka producer", nil)
			return producer.Close()
		},
	})
}
