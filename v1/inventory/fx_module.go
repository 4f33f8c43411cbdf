package inventory

import (
	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/postgres"
)

// FXModule provides the *Repository.
var FXModule = fx.Module("inventory",
	fx.Provide(NewRepositoryWithDI),
)

// NewRepositoryWithDI adapts NewRepository to the container's concrete logger.
func NewRepositoryWithDI(pg *postgres.Postgres, log *logger.Logger) *Repository {
	return NewRepository(pg, log)
}
