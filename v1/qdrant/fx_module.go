package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/logger"
)

// FXModule provides the *Client and manages its lifecycle. When no endpoint is
// configured the provided client is nil and semantic search stays disabled.
var FXModule = fx.Module("qdrant",
	fx.Provide(NewClientWithDI),
	fx.Invoke(RegisterQdrantLifecycle),
)

// QdrantParams groups the client's dependencies for fx.
type QdrantParams struct {
	fx.In

	Config Config
	Logger *logger.Logger
}

// NewClientWithDI connects when an endpoint is configured.
func NewClientWithDI(p QdrantParams) (*Client, error) {
	if p.Config.Endpoint == "" {
		p.Logger.Info("qdrant endpoint not configured, vector search disabled", nil)
		return nil, nil
	}
	return NewClient(p.Config, p.Logger)
}

// RegisterQdrantLifecycle makes sure the inventory collection exists on start
// and closes the connection on stop.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client, log *logger.Logger) {
	if client == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if client.cfg.Collection == "" || client.cfg.VectorSize == 0 {
				return nil
			}
			return client.EnsureCollection(ctx, client.cfg.Collection, client.cfg.VectorSize)
		},
		OnStop: func(ctx context.Context) error {
			log.Info("closing qdrant client", nil)
			return client.Close()
		},
	})
}
