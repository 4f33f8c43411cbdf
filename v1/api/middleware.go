package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-Id"

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID returns the id assigned to the request, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// responseWriter captures the status code and body size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// requestID keeps an incoming X-Request-Id or assigns a new uuid, and echoes it
// on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.ErrorWithContext(r.Context(), "panic while serving request", fmt.Errorf("%v", rec), map[string]interface{}{
					"request_id": RequestID(r.Context()),
					"path":       r.URL.Path,
				})
				respondJSON(w, http.StatusInternalServerError, map[string]any{
					"ok":    false,
					"error": "internal error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		fields := map[string]interface{}{
			"request_id":  RequestID(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"bytes":       rw.bytes,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote":      r.RemoteAddr,
		}
		switch {
		case rw.statusCode >= 500:
			s.logger.Error("request", nil, fields)
		case rw.statusCode >= 400:
			s.logger.Warn("request", nil, fields)
		default:
			s.logger.Info("request", nil, fields)
		}
	})
}

// instrument records request metrics and, when tracing is on, a server span.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		ctx := r.Context()
		if s.tracer != nil {
			ctx = s.tracer.ExtractHTTPContext(ctx, propagation.HeaderCarrier(r.Header))
			var span trace.Span
			ctx, span = s.tracer.StartSpan(ctx, r.Method+" "+r.URL.Path)
			defer func() {
				s.tracer.SetAttributes(span, map[string]interface{}{
					"http.request.method":       r.Method,
					"http.response.status_code": rw.statusCode,
				})
				span.End()
			}()
		}

		next.ServeHTTP(rw, r.WithContext(ctx))

		if s.recorder != nil {
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			s.recorder.IncrementRequests(strconv.Itoa(rw.statusCode/100) + "xx")
			s.recorder.RecordRequestDuration(start, route)
		}
	})
}
