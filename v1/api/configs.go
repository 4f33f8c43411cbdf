package api

import "time"

// Config holds the HTTP server settings and request defaults.
type Config struct {
	// Address is the listen address, e.g. ":3000".
	Address string `yaml:"address" env:"HTTP_ADDRESS"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`

	// AllowedOrigins feeds the CORS handler.
	AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`

	// DefaultLimit is the page size used when a request names none.
	DefaultLimit int `yaml:"default_limit" env:"AI_DEFAULT_LIMIT"`

	// MaxLimit clamps the requested page size.
	MaxLimit int `yaml:"max_limit" env:"AI_MAX_LIMIT"`
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Address:         ":3000",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		AllowedOrigins:  []string{"*"},
		DefaultLimit:    20,
		MaxLimit:        100,
	}
}
