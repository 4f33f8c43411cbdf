package semantic

import (
	"context"
	"fmt"

	"github.com/resguardo/inventory-query/v1/inventory"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/querybuilder"
	"github.com/resguardo/inventory-query/v1/vocabulary"
)

// Lister pages through inventory records.
type Lister interface {
	List(ctx context.Context, stmt querybuilder.Statement) ([]inventory.Item, error)
}

// Reindex walks every inventory record, logically deleted ones included, in
// batches of batchSize and indexes each batch. It returns the number of
// records indexed.
func (s *Service) Reindex(ctx context.Context, lister Lister, batchSize int) (int, error) {
	if !s.Enabled() {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	p := plan.New(plan.IntentList, plan.Pagination{Page: 1, Limit: batchSize}, 1)
	p.Filters.Enabled = nil
	p.Sort = []plan.SortSpec{{Field: vocabulary.DateFieldCreatedAt, Dir: vocabulary.SortAsc}}

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		items, err := lister.List(ctx, querybuilder.BuildList(p))
		if err != nil {
			return total, fmt.Errorf("list page %d: %w", p.Pagination.Page, err)
		}
		if err := s.Index(ctx, items); err != nil {
			return total, fmt.Errorf("index page %d: %w", p.Pagination.Page, err)
		}
		total += len(items)
		if len(items) < batchSize {
			return total, nil
		}
		p.Pagination.Page++
	}
}
