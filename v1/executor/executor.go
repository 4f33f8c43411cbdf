package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/resguardo/inventory-query/v1/inventory"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/querybuilder"
	"github.com/resguardo/inventory-query/v1/tracer"
)

//go:generate mockgen -source=executor.go -destination=mock_executor.go -package=executor

// ErrQueryExecution wraps every failure raised while running a plan.
var ErrQueryExecution = errors.New("query execution failed")

// Store runs built statements.
type Store interface {
	List(ctx context.Context, stmt querybuilder.Statement) ([]inventory.Item, error)
	Count(ctx context.Context, stmt querybuilder.Statement) (int64, error)
	GroupCount(ctx context.Context, stmt querybuilder.Statement) ([]inventory.GroupRow, error)
}

// Retriever resolves a search plan to candidate ids.
type Retriever interface {
	Retrieve(ctx context.Context, p *plan.Plan) ([]int64, error)
}

// Recorder observes executed plans.
type Recorder interface {
	RecordQuery(start time.Time, intent, outcome string)
}

// Executor dispatches a validated plan to the store and, for searches, to the
// retriever first.
type Executor struct {
	cfg       Config
	store     Store
	retriever Retriever
	recorder  Recorder
	tracer    *tracer.Tracer
}

// NewExecutor returns an Executor. retriever and recorder may be nil.
func NewExecutor(cfg Config, store Store, retriever Retriever, recorder Recorder) *Executor {
	return &Executor{cfg: cfg, store: store, retriever: retriever, recorder: recorder}
}

// WithTracer records a span per executed plan.
func (e *Executor) WithTracer(t *tracer.Tracer) *Executor {
	e.tracer = t
	return e
}

// Execute runs p and returns its envelope. Any collaborator failure is returned
// wrapped in ErrQueryExecution and no partial result is produced.
func (e *Executor) Execute(ctx context.Context, p *plan.Plan) (*Result, error) {
	start := time.Now()

	var span trace.Span
	if e.tracer != nil {
		ctx, span = e.tracer.StartSpan(ctx, "executor.Execute")
		defer span.End()
		e.tracer.SetAttributes(span, map[string]interface{}{"plan.intent": string(p.Intent)})
	}

	res, err := e.dispatch(ctx, p)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		err = fmt.Errorf("%w: %w", ErrQueryExecution, err)
		if span != nil {
			e.tracer.RecordErrorOnSpan(span, err)
		}
	}
	if e.recorder != nil {
		e.recorder.RecordQuery(start, string(p.Intent), outcome)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Executor) dispatch(ctx context.Context, p *plan.Plan) (*Result, error) {
	switch p.Intent {
	case plan.IntentCount:
		total, err := e.store.Count(ctx, querybuilder.BuildCount(p))
		if err != nil {
			return nil, err
		}
		return &Result{Type: TypeAggregation, Metric: MetricCount, Total: total}, nil

	case plan.IntentGroupCount:
		return e.groupCount(ctx, p)

	case plan.IntentMissing:
		total, items, err := e.countAndList(ctx, p)
		if err != nil {
			return nil, err
		}
		return newPage(TypeMixed, total, items, p.Pagination), nil

	case plan.IntentSearch:
		return e.search(ctx, p)

	case plan.IntentList:
		total, items, err := e.countAndList(ctx, p)
		if err != nil {
			return nil, err
		}
		return newPage(TypeList, total, items, p.Pagination), nil
	}
	return nil, fmt.Errorf("unsupported intent %q", p.Intent)
}

func (e *Executor) groupCount(ctx context.Context, p *plan.Plan) (*Result, error) {
	rows, err := e.store.GroupCount(ctx, querybuilder.BuildGroupCount(p))
	if err != nil {
		return nil, err
	}

	var total int64
	for _, r := range rows {
		total += r.Count
	}
	groupBy := ""
	if p.GroupBy != nil {
		groupBy = *p.GroupBy
	}
	return &Result{
		Type:    TypeAggregation,
		Metric:  MetricCount,
		Total:   total,
		GroupBy: groupBy,
		Rows:    rows,
	}, nil
}

// search lists the candidate records. The total is the candidate count, not
// the number of rows that survive the relational fetch.
func (e *Executor) search(ctx context.Context, p *plan.Plan) (*Result, error) {
	if e.retriever == nil {
		return newPage(TypeList, 0, nil, p.Pagination), nil
	}
	ids, err := e.retriever.Retrieve(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return newPage(TypeList, 0, nil, p.Pagination), nil
	}

	items, err := e.store.List(ctx, querybuilder.BuildListByIDs(p, ids))
	if err != nil {
		return nil, err
	}
	return newPage(TypeList, int64(len(ids)), items, p.Pagination), nil
}

// countAndList runs the count and the page query, concurrently unless
// Config.Parallel is off.
func (e *Executor) countAndList(ctx context.Context, p *plan.Plan) (int64, []inventory.Item, error) {
	var (
		total int64
		items []inventory.Item
	)
	if !e.cfg.Parallel {
		total, err := e.store.Count(ctx, querybuilder.BuildCount(p))
		if err != nil {
			return 0, nil, err
		}
		items, err := e.store.List(ctx, querybuilder.BuildList(p))
		if err != nil {
			return 0, nil, err
		}
		return total, items, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = e.store.Count(gctx, querybuilder.BuildCount(p))
		return err
	})
	g.Go(func() error {
		var err error
		items, err = e.store.List(gctx, querybuilder.BuildList(p))
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
