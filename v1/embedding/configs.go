package embedding

import (
	"fmt"
	"time"
)

// Endpoint must point to the root of an OpenAI-compatible inference service
// (no /embeddings appended). The provider appends paths itself.

// Config holds the embedding service settings.
type Config struct {
	// Endpoint is the base URL of the inference service. Empty disables embeddings.
	Endpoint string `yaml:"endpoint" env:"EMBEDDING_ENDPOINT"`

	// Model is the embedding model name sent with every request.
	Model string `yaml:"model" env:"EMBEDDING_MODEL"`

	// ServiceToken is sent as a bearer token when set.
	ServiceToken string `yaml:"service_token" env:"EMBEDDING_SERVICE_TOKEN"`

	// Timeout bounds a single HTTP round trip.
	Timeout time.Duration `yaml:"timeout" env:"EMBEDDING_HTTP_TIMEOUT"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Model:   "nomic-embed-text",
		Timeout: 30 * time.Second,
	}
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	return nil
}
