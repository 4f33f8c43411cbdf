package kafka

import "time"

// Defaults applied by NewProducer to zero-valued settings.
const (
	DefaultRequiredAcks = 1
	DefaultBatchTimeout = 500 * time.Millisecond
	DefaultWriteTimeout = 10 * time.Second
	DefaultMaxAttempts  = 3
)

// Config holds the producer settings.
type Config struct {
	// Brokers lists bootstrap brokers as host:port. Empty disables publishing.
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`

	// Topic receives every published event.
	Topic string `yaml:"topic" env:"KAFKA_TOPIC"`

	// RequiredAcks is -1 (all replicas) or 1 (leader). Zero falls back to 1.
	RequiredAcks int `yaml:"required_acks" env:"KAFKA_REQUIRED_ACKS"`

	// Async hands messages to a background batcher so Publish never waits on
	// the broker. Delivery errors are then only logged.
	Async bool `yaml:"async" env:"KAFKA_ASYNC"`

	BatchTimeout time.Duration `yaml:"batch_timeout" env:"KAFKA_BATCH_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT"`
	MaxAttempts  int           `yaml:"max_attempts" env:"KAFKA_MAX_ATTEMPTS"`

	// CompressionCodec is one of gzip, snappy, lz4 or zstd. Empty sends uncompressed.
	CompressionCodec string `yaml:"compression_codec" env:"KAFKA_COMPRESSION"`

	TLS  TLSConfig  `yaml:"tls"`
	SASL SASLConfig `yaml:"sasl"`
}

// TLSConfig configures TLS towards the brokers.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled" env:"KAFKA_TLS_ENABLED"`
	CACertPath         string `yaml:"ca_cert_path" env:"KAFKA_TLS_CA_CERT"`
	ClientCertPath     string `yaml:"client_cert_path" env:"KAFKA_TLS_CLIENT_CERT"`
	ClientKeyPath      string `yaml:"client_key_path" env:"KAFKA_TLS_CLIENT_KEY"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify" env:"KAFKA_TLS_INSECURE"`
}

// SASLConfig configures SASL authentication.
type SASLConfig struct {
	Enabled bool `yaml:"enabled" env:"KAFKA_SASL_ENABLED"`

	// Mechanism is PLAIN, SCRAM-SHA-256 or SCRAM-SHA-512.
	Mechanism string `yaml:"mechanism" env:"KAFKA_SASL_MECHANISM"`
	Username  string `yaml:"username" env:"KAFKA_SASL_USERNAME"`
	Password  string `yaml:"password" env:"KAFKA_SASL_PASSWORD"`
}

// DefaultConfig returns a disabled producer configuration.
func DefaultConfig() Config {
	return Config{
		Topic:        "inventory.ai-queries",
		RequiredAcks: DefaultRequiredAcks,
		Async:        true,
		BatchTimeout: DefaultBatchTimeout,
		WriteTimeout: DefaultWriteTimeout,
		MaxAttempts:  DefaultMaxAttempts,
	}
}
