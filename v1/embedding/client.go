package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyText is returned when Embed is called with blank text.
var ErrEmptyText = errors.New("embedding: text is empty")

// Client is the public entrypoint for computing embeddings.
//
// It hides the inference endpoint and HTTP details from the application layer.
type Client struct {
	provider Provider
	model    string
}

// NewClient validates cfg and constructs the inference provider behind it.
func NewClient(cfg Config) (*Client, error) {
	def := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}
	return &Client{provider: newInferenceProvider(cfg), model: cfg.Model}, nil
}

// NewClientWithProvider builds a client over an arbitrary provider.
func NewClientWithProvider(p Provider, model string) *Client {
	return &Client{provider: p, model: model}
}

// Embed returns the vector for a single text in the precision the vector
// store expects.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	vectors, err := c.provider.Create(ctx, c.model, text)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("embedding: provider returned no vector")
	}
	return toFloat32(vectors[0]), nil
}

// EmbedBatch returns one vector per text, in order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := c.provider.Create(ctx, c.model, texts...)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	out := make([][]float32, len(vectors))
	for i, v := range vectors {
		out[i] = toFloat32(v)
	}
	return out, nil
}

// Model returns the embedding model name.
func (c *Client) Model() string {
	return c.model
}
