package planner

import "time"

// Config controls which planner path runs and the defaults it applies.
type Config struct {
	// LLMEnabled routes questions to the language model first. When false only
	// the heuristic planner runs.
	LLMEnabled bool `yaml:"llm_enabled" env:"AI_LLM_ENABLED"`

	// Model overrides the chat client's default model.
	Model string `yaml:"model" env:"AI_LLM_MODEL"`

	// Timeout bounds the whole model call, including response transfer.
	Timeout time.Duration `yaml:"timeout" env:"AI_LLM_TIMEOUT"`

	// DefaultTopK is applied to semantic specs that carry no usable topK.
	DefaultTopK int `yaml:"default_top_k" env:"AI_DEFAULT_TOPK"`

	// MaxLimit is the largest page size a plan may request.
	MaxLimit int `yaml:"max_limit" env:"AI_MAX_LIMIT"`
}

// DefaultConfig returns the heuristic-only configuration.
func DefaultConfig() Config {
	return Config{
		LLMEnabled:  false,
		Timeout:     15 * time.Second,
		DefaultTopK: 10,
		MaxLimit:    100,
	}
}
