// Package kafka publishes JSON events to a Kafka topic.
//
// The service uses it as an audit trail: every answered or failed question is
// written as one event keyed by request id. Publishing is optional; without
// brokers the fx provider yields a nil *Producer.
//
// # Usage
//
//	producer, err := kafka.NewProducer(kafka.Config{
//	    Brokers: []string{"localhost:9092"},
//	    Topic:   "inventory.ai-queries",
//	    Async:   true,
//	}, log)
//	if err != nil {
//	    return err
//	}
//	defer producer.Close()
//
//	err = producer.Publish(ctx, requestID, event)
//
// # Security
//
// TLS and SASL (PLAIN, SCRAM-SHA-256, SCRAM-SHA-512) are configured through
// Config.TLS and Config.SASL and applied to the writer's transport.
package kafka
