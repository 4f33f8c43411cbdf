package semantic

// Config gates similarity retrieval.
type Config struct {
	// Enabled turns the vector index on. When false Retrieve always returns no
	// candidates.
	Enabled bool `yaml:"enabled" env:"AI_VECTOR_ENABLED"`

	// Collection is the vector collection holding one point per inventory record.
	Collection string `yaml:"collection" env:"QDRANT_COLLECTION"`
}

// DefaultConfig returns a disabled configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Collection: "inventory_items",
	}
}
