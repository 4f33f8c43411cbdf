package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// ErrNoTopic is returned by NewProducer when brokers are set without a topic.
var ErrNoTopic = errors.New("kafka: topic is required")

// Logger is the subset of the logger used by the producer.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes JSON events to one topic.
type Producer struct {
	writer    messageWriter
	topic     string
	logger    Logger
	published *prometheus.CounterVec
}

// NewProducer builds a producer for cfg.Topic. No connection is made until the
// first message is written.
func NewProducer(cfg Config, logger Logger) (*Producer, error) {
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	if cfg.RequiredAcks == 0 {
		cfg.RequiredAcks = DefaultRequiredAcks
	}
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = DefaultBatchTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	transport := &kafka.Transport{}
	if cfg.TLS.Enabled {
		tlsConfig, err := createTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		transport.TLS = tlsConfig
	}
	if cfg.SASL.Enabled {
		mechanism, err := createSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, fmt.Errorf("failed to create SASL mechanism: %w", err)
		}
		transport.SASL = mechanism
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        cfg.Async,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		MaxAttempts:  cfg.MaxAttempts,
		Transport:    transport,
		ErrorLogger:  errorLogger(logger),
	}
	if codec, ok := compressionCodecs[cfg.CompressionCodec]; ok {
		w.Compression = codec
	}
	if cfg.Async {
		w.Completion = func(messages []kafka.Message, err error) {
			if err != nil && logger != nil {
				logger.Error("failed to deliver events", err, map[string]interface{}{
					"topic":    cfg.Topic,
					"messages": len(messages),
				})
			}
		}
	}

	return newProducer(w, cfg.Topic, logger), nil
}

func newProducer(w messageWriter, topic string, logger Logger) *Producer {
	return &Producer{writer: w, topic: topic, logger: logger}
}

// WithCounter counts Publish calls by outcome ("ok" or "error") in c, which must
// have a single outcome label.
func (p *Producer) WithCounter(c *prometheus.CounterVec) *Producer {
	p.published = c
	return p
}

// Publish encodes value as JSON and writes it with key. Messages with the same
// key land on the same partition.
func (p *Producer) Publish(ctx context.Context, key string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := kafka.Message{Key: []byte(key), Value: body}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.count("error")
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	p.count("ok")
	return nil
}

func (p *Producer) count(outcome string) {
	if p.published != nil {
		p.published.WithLabelValues(outcome).Inc()
	}
}

// Close flushes pending messages and releases connections.
func (p *Producer) Close() error {
	return p.writer.Close()
}

var compressionCodecs = map[string]kafka.Compression{
	"gzip":   kafka.Gzip,
	"snappy": kafka.Snappy,
	"lz4":    kafka.Lz4,
	"zstd":   kafka.Zstd,
}

func errorLogger(logger Logger) kafka.Logger {
	if logger == nil {
		return nil
	}
	return kafka.LoggerFunc(func(msg string, args ...interface{}) {
		logger.Error("kafka internal error", nil, map[string]interface{}{
			"error": fmt.Sprintf(msg, args...),
		})
	})
}

func createTLSConfig(cfg TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	if cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA cert")
		}
		tlsConfig.RootCAs = caCertPool
	}

	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

func createSASLMechanism(cfg SASLConfig) (sasl.Mechanism, error) {
	switch cfg.Mechanism {
	case "PLAIN":
		return plain.Mechanism{
			Username: cfg.Username,
			Password: cfg.Password,
		}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism: %s", cfg.Mechanism)
	}
}
