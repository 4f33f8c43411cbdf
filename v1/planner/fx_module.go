package planner

import (
	"go.uber.org/fx"

	"github.com/resguardo/inventory-query/v1/llm"
	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/metrics"
)

// FXModule provides the *Planner.
var FXModule = fx.Module("planner",
	fx.Provide(NewPlannerWithDI),
)

// PlannerParams groups the planner's dependencies for fx.
type PlannerParams struct {
	fx.In

	Config  Config
	Chat    *llm.Client
	Logger  *logger.Logger
	Metrics metrics.MetricsCollector
}

// NewPlannerWithDI builds the planner from container dependencies.
func NewPlannerWithDI(p PlannerParams) *Planner {
	return NewPlanner(p.Config, p.Chat, p.Logger, p.Metrics)
}
