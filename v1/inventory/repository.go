package inventory

import (
	"context"
	"fmt"

	"github.com/resguardo/inventory-query/v1/postgres"
	"github.com/resguardo/inventory-query/v1/querybuilder"
)

// Logger is the subset of the logger used by the repository.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
}

// Repository runs built statements against the inventory schema.
type Repository struct {
	pg     *postgres.Postgres
	logger Logger
}

// NewRepository returns a repository reading through pg.
func NewRepository(pg *postgres.Postgres, logger Logger) *Repository {
	return &Repository{pg: pg, logger: logger}
}

// List runs a list or list-by-ids statement.
func (r *Repository) List(ctx context.Context, stmt querybuilder.Statement) ([]Item, error) {
	r.debug("list", stmt)
	items, err := postgres.Collect[Item](ctx, r.pg, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Count runs a count statement and returns its single total.
func (r *Repository) Count(ctx context.Context, stmt querybuilder.Statement) (int64, error) {
	r.debug("count", stmt)
	rows, err := postgres.Collect[countRow](ctx, r.pg, stmt.SQL, stmt.Args...)
	if err != nil {
		return 0, fmt.Errorf("count inventories: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// GroupCount runs a grouped count statement.
func (r *Repository) GroupCount(ctx context.Context, stmt querybuilder.Statement) ([]GroupRow, error) {
	r.debug("group count", stmt)
	rows, err := postgres.Collect[GroupRow](ctx, r.pg, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("group inventories: %w", err)
	}
	if rows == nil {
		rows = []GroupRow{}
	}
	return rows, nil
}

func (r *Repository) debug(op string, stmt querybuilder.Statement) {
	if r.logger == nil {
		return
	}
	r.logger.Debug("running inventory query", nil, map[string]interface{}{
		"op":   op,
		"sql":  stmt.SQL,
		"args": len(stmt.Args),
	})
}
