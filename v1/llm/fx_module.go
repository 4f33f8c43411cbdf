package llm

import "go.uber.org/fx"

// FXModule provides a *Client built from the Config in the container.
var FXModule = fx.Module("llm",
	fx.Provide(NewClient),
)
