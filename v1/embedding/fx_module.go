package embedding

import (
	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/logger"
)

// FXModule provides a *Client when an endpoint is configured and nil otherwise,
// so semantic retrieval can run disabled without failing startup.
var FXModule = fx.Module("embedding",
	fx.Provide(NewClientWithDI),
)

// NewClientWithDI builds the client from the container's Config.
func NewClientWithDI(cfg Config, log *logger.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		log.Info("embedding endpoint not configured, semantic search disabled", nil)
		return nil, nil
	}
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("embedding client ready", nil, map[string]interface{}{
		"model": client.Model(),
	})
	return client, nil
}
