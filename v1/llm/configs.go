package llm

import "time"

// Config holds the connection settings for the chat model server.
type Config struct {
	// Endpoint is the base URL of the server, e.g. http://localhost:11434.
	Endpoint string `yaml:"endpoint" env:"LLM_ENDPOINT"`

	// Model is used when Chat is called without an explicit model.
	Model string `yaml:"model" env:"LLM_MODEL"`

	// APIKey is sent as a bearer token when set.
	APIKey string `yaml:"api_key" env:"LLM_API_KEY"`

	// Timeout bounds a single HTTP round trip.
	Timeout time.Duration `yaml:"timeout" env:"LLM_TIMEOUT"`

	// Temperature is forwarded in the request options.
	Temperature float64 `yaml:"temperature" env:"LLM_TEMPERATURE"`
}

// DefaultConfig returns settings for a local Ollama instance.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.1",
		Timeout:     20 * time.Second,
		Temperature: 0,
	}
}
