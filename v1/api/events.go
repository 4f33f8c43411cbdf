package api

import (
	"context"
	"time"

	"github.com/resguardo/inventory-query/v1/executor"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/planner"
)

// Publisher receives one event per handled question.
type Publisher interface {
	Publish(ctx context.Context, key string, value any) error
}

// QueryEvent records a handled question. Failed events carry no result fields.
type QueryEvent struct {
	RequestID  string              `json:"requestId"`
	Question   string              `json:"question"`
	Source     planner.Source      `json:"planSource,omitempty"`
	Intent     plan.Intent         `json:"intent,omitempty"`
	ResultType executor.ResultType `json:"resultType,omitempty"`
	Total      int64               `json:"total"`
	ElapsedMs  int64               `json:"elapsedMs"`
	Failed     bool                `json:"failed"`
	At         time.Time           `json:"at"`
}

// WithPublisher sends a QueryEvent after every /ai/query request that passed
// validation. Publish errors are logged and never reach the client.
func (s *Server) WithPublisher(p Publisher) *Server {
	s.publisher = p
	return s
}

func (s *Server) publish(ctx context.Context, ev QueryEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev.RequestID, ev); err != nil {
		s.logger.Warn("failed to publish query event", err, map[string]interface{}{
			"request_id": ev.RequestID,
		})
	}
}

func newQueryEvent(requestID, question string, source planner.Source, p *plan.Plan, res *executor.Result, elapsed int64, at time.Time) QueryEvent {
	ev := QueryEvent{
		RequestID: requestID,
		Question:  question,
		Source:    source,
		ElapsedMs: elapsed,
		Failed:    res == nil,
		At:        at.UTC(),
	}
	if p != nil {
		ev.Intent = p.Intent
	}
	if res != nil {
		ev.ResultType = res.Type
		ev.Total = res.Total
	}
	return ev
}
