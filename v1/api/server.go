package api

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/resguardo/inventory-query/v1/executor"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/planner"
	"github.com/resguardo/inventory-query/v1/tracer"
	"github.com/resguardo/inventory-query/v1/vectordb"
)

// Planner turns a question into a validated plan.
type Planner interface {
	PlanWithSource(ctx context.Context, question string, page plan.Pagination) (*plan.Plan, planner.Source, error)
}

// Executor runs a validated plan.
type Executor interface {
	Execute(ctx context.Context, p *plan.Plan) (*executor.Result, error)
}

// Pinger reports whether the relational store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// VectorIndex reports the state of the similarity collection. A nil
// collection with no error means similarity search is disabled.
type VectorIndex interface {
	Collection(ctx context.Context) (*vectordb.Collection, error)
}

// Logger is the subset of the logger used by the API.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Recorder observes handled requests.
type Recorder interface {
	IncrementRequests(status string)
	RecordRequestDuration(start time.Time, endpoint string)
}

// Features reports which optional planner and retrieval paths are active.
type Features struct {
	LLMPlanner     bool `json:"llmPlanner"`
	SemanticSearch bool `json:"semanticSearch"`
	DefaultTopK    int  `json:"defaultTopK"`
}

// Server serves the question-answering endpoints.
type Server struct {
	cfg       Config
	planner   Planner
	executor  Executor
	pinger    Pinger
	index     VectorIndex
	logger    Logger
	recorder  Recorder
	publisher Publisher
	tracer    *tracer.Tracer
	features  Features
	validate  *validator.Validate
	now       func() time.Time
}

// NewServer returns a Server. pinger, recorder and tracer may be nil.
func NewServer(cfg Config, planner Planner, exec Executor, pinger Pinger, logger Logger, recorder Recorder, features Features) *Server {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Server{
		cfg:      cfg,
		planner:  planner,
		executor: exec,
		pinger:   pinger,
		logger:   logger,
		recorder: recorder,
		features: features,
		validate: v,
		now:      time.Now,
	}
}

// WithVectorIndex adds the vector collection to /health.
func (s *Server) WithVectorIndex(v VectorIndex) *Server {
	s.index = v
	return s
}

// WithTracer continues propagated traces and records a span per request.
func (s *Server) WithTracer(t *tracer.Tracer) *Server {
	s.tracer = t
	return s
}

// HTTPServer returns the *http.Server serving Routes on cfg.Address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Routes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
}
