package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/resguardo/inventory-query/v1/executor"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/planner"
	"github.com/resguardo/inventory-query/v1/vocabulary"
)

// maxBodyBytes bounds the request body; a question is at most 3000 characters.
const maxBodyBytes = 64 << 10

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	start := s.now()
	ctx := r.Context()

	var req queryRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		respondInvalid(w, []FieldError{{Field: "body", Message: "must be a JSON object"}})
		return
	}
	if details := req.validate(s.validate); len(details) > 0 {
		respondInvalid(w, details)
		return
	}
	page := req.pagination(s.cfg)

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.StartSpan(ctx, "planner.Plan")
	}
	p, source, err := s.planner.PlanWithSource(ctx, req.Q, page)
	if span != nil {
		if err != nil {
			s.tracer.RecordErrorOnSpan(span, err)
		}
		s.tracer.SetAttributes(span, map[string]interface{}{"plan.source": string(source)})
		span.End()
	}
	if err != nil {
		s.fail(w, r, start, "could not build a query plan", err)
		s.publish(context.WithoutCancel(ctx), newQueryEvent(RequestID(ctx), req.Q, source, nil, nil, elapsedMillis(s.now(), start), start))
		return
	}

	result, err := s.executor.Execute(ctx, p)
	if err != nil {
		s.fail(w, r, start, "query execution failed", err)
		s.publish(context.WithoutCancel(ctx), newQueryEvent(RequestID(ctx), req.Q, source, p, nil, elapsedMillis(s.now(), start), start))
		return
	}

	body := result.Fields()
	body["ok"] = true
	body["query"] = req.Q
	body["plan"] = p
	body["planSource"] = source
	body["pagination"] = page
	elapsed := elapsedMillis(s.now(), start)
	body["elapsed"] = elapsed
	respondJSON(w, http.StatusOK, body)

	s.publish(context.WithoutCancel(ctx), newQueryEvent(RequestID(ctx), req.Q, source, p, result, elapsed, start))
}

// fail logs err and writes a 500 carrying the public message plus the
// underlying error text.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, start time.Time, public string, err error) {
	fields := map[string]interface{}{
		"request_id":   RequestID(r.Context()),
		"invalid_plan": errors.Is(err, planner.ErrInvalidPlan),
		"execution":    errors.Is(err, executor.ErrQueryExecution),
	}
	s.logger.ErrorWithContext(r.Context(), public, err, fields)

	respondJSON(w, http.StatusInternalServerError, map[string]any{
		"ok":        false,
		"error":     public,
		"message":   err.Error(),
		"requestId": RequestID(r.Context()),
		"elapsed":   elapsedMillis(s.now(), start),
	})
}

func elapsedMillis(now, start time.Time) int64 {
	return now.Sub(start).Milliseconds()
}

type configResponse struct {
	OK            bool          `json:"ok"`
	Intents       []plan.Intent `json:"intents"`
	GroupBy       []string      `json:"groupBy"`
	Statuses      []string      `json:"statuses"`
	DateFields    []string      `json:"dateFields"`
	MissingFields []string      `json:"missingFields"`
	DefaultLimit  int           `json:"defaultLimit"`
	MaxLimit      int           `json:"maxLimit"`
	MaxQuestion   int           `json:"maxQuestionLength"`
	Features      Features      `json:"features"`
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, configResponse{
		OK:            true,
		Intents:       plan.Intents,
		GroupBy:       vocabulary.GroupDimensions,
		Statuses:      vocabulary.Statuses,
		DateFields:    vocabulary.DateFields,
		MissingFields: vocabulary.MissingFields,
		DefaultLimit:  s.cfg.DefaultLimit,
		MaxLimit:      s.cfg.MaxLimit,
		MaxQuestion:   MaxQuestionLength,
		Features:      s.features,
	})
}

// Suggestions are example questions shown to users.
var Suggestions = []string{
	"Cuántos inventarios hay de la marca Avigilon",
	"Inventarios sin ubicación",
	"Equipos sin factura",
	"Gráfica de inventarios por marca",
	"Modelos de HP y Dell",
	"Laptops dadas de alta entre octubre y noviembre",
	"Inventarios con propuesta de baja",
	"Equipos recibidos en marzo de 2024",
	"Cuántos equipos sin número de serie",
	"Buscar cámaras parecidas a la H5A",
}

func (s *Server) handleSuggestions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"ok":          true,
		"suggestions": Suggestions,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{"ok": true, "database": "up"}
	code := http.StatusOK
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			s.logger.Warn("health check failed", err, nil)
			status["ok"] = false
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
	}
	if s.index != nil {
		status["vectorIndex"] = s.vectorIndexStatus(r.Context())
	}
	respondJSON(w, code, status)
}

// vectorIndexStatus reports the collection without affecting the status code.
func (s *Server) vectorIndexStatus(ctx context.Context) map[string]any {
	c, err := s.index.Collection(ctx)
	switch {
	case err != nil:
		s.logger.Warn("vector index check failed", err, nil)
		return map[string]any{"status": "down"}
	case c == nil:
		return map[string]any{"status": "disabled"}
	default:
		return map[string]any{"status": "up", "collection": c.Name, "points": c.PointCount}
	}
}
