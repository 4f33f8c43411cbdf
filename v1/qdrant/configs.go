package qdrant

import "time"

// Config holds connection and behavior settings for the Qdrant client.
//
// Example:
//
//	cfg := qdrant.DefaultConfig()
//	cfg.Endpoint = "qdrant.internal"
//	cfg.ApiKey = os.Getenv("QDRANT_API_KEY")
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost". Empty disables the client.
	Endpoint string `yaml:"endpoint" env:"QDRANT_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// UseTLS enables TLS on the gRPC connection.
	UseTLS bool `yaml:"use_tls" env:"QDRANT_USE_TLS"`

	// Collection holds one point per inventory item, keyed by item id.
	Collection string `yaml:"collection" env:"QDRANT_COLLECTION"`

	// VectorSize is the embedding dimension used when the collection is created.
	VectorSize uint64 `yaml:"vector_size" env:"QDRANT_VECTOR_SIZE"`

	// Maximum request duration before timing out.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Port:       6334,
		Collection: "inventory_items",
		VectorSize: 768,
		Timeout:    5 * time.Second,
	}
}
