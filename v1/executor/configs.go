package executor

// Config tunes plan execution.
type Config struct {
	// Parallel runs the count and page statements of list and missing plans
	// concurrently.
	Parallel bool `yaml:"parallel" env:"AI_PARALLEL_QUERIES"`
}

// DefaultConfig runs count and page statements concurrently.
func DefaultConfig() Config {
	return Config{Parallel: true}
}
