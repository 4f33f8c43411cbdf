package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Logger is the logging contract the client needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
}

// Client wraps the official Qdrant Go client and implements vectordb.Service.
type Client struct {
	api    *qdrant.Client
	cfg    Config
	logger Logger
}

const (
	defaultPort      = 6334
	defaultBatchSize = 200
)

// NewClient connects to Qdrant and verifies connectivity with a health check.
// The SDK dials lazily, so the health check is what fails fast when the
// service is unreachable.
func NewClient(cfg Config, logger Logger) (*Client, error) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	logger.Info("connecting to qdrant", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     cfg.Port,
	})

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   cfg.Port,
		APIKey:                 cfg.ApiKey,
		UseTLS:                 cfg.UseTLS,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	c := &Client{api: api, cfg: cfg, logger: logger}
	if err := c.healthCheck(context.Background()); err != nil {
		_ = api.Close()
		return nil, err
	}
	return c, nil
}

// healthCheck calls the service health endpoint with a short deadline.
func (c *Client) healthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	c.logger.Info("qdrant health check passed", nil, map[string]interface{}{
		"title":   resp.GetTitle(),
		"version": resp.GetVersion(),
	})
	return nil
}

// Collection returns the configured inventory collection name.
func (c *Client) Collection() string {
	return c.cfg.Collection
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.api.Close()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.Timeout)
}
