package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/resguardo/inventory-query/v1/llm"
	"github.com/resguardo/inventory-query/v1/plan"
)

// ErrInvalidPlan is returned when a candidate cannot be normalized into a valid plan.
var ErrInvalidPlan = errors.New("invalid query plan")

// Source names the path that produced a plan.
type Source string

const (
	SourceHeuristic   Source = "heuristic"
	SourceLLM         Source = "llm"
	SourceLLMFallback Source = "llm_fallback"
)

// ChatClient is the language model collaborator.
type ChatClient interface {
	Chat(ctx context.Context, model string, messages []llm.Message) (*llm.ChatResponse, error)
}

// Logger is the logging contract the planner needs.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Recorder counts produced plans by source.
type Recorder interface {
	IncrementPlans(source string)
}

// Planner turns questions into validated plans. With the model enabled it asks
// the model first and falls back to the heuristic planner whenever the model is
// unreachable or its reply cannot be parsed.
type Planner struct {
	cfg       Config
	chat      ChatClient
	heuristic *Heuristic
	logger    Logger
	recorder  Recorder
	now       func() time.Time
}

// NewPlanner builds a planner. chat may be nil when the model is disabled and
// recorder may be nil.
func NewPlanner(cfg Config, chat ChatClient, logger Logger, recorder Recorder) *Planner {
	def := DefaultConfig()
	if cfg.DefaultTopK <= 0 {
		cfg.DefaultTopK = def.DefaultTopK
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	return &Planner{
		cfg:       cfg,
		chat:      chat,
		heuristic: NewHeuristic(cfg.DefaultTopK, time.Now),
		logger:    logger,
		recorder:  recorder,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for date defaults. Intended for tests.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	p.heuristic = NewHeuristic(p.cfg.DefaultTopK, now)
	return p
}

// Plan returns the validated plan for question.
func (p *Planner) Plan(ctx context.Context, question string, page plan.Pagination) (*plan.Plan, error) {
	pl, _, err := p.PlanWithSource(ctx, question, page)
	return pl, err
}

// PlanWithSource is Plan, also reporting which path built the plan.
func (p *Planner) PlanWithSource(ctx context.Context, question string, page plan.Pagination) (*plan.Plan, Source, error) {
	opts := NormalizeOptions{Pagination: page, DefaultTopK: p.cfg.DefaultTopK, Question: question}

	if !p.cfg.LLMEnabled || p.chat == nil {
		pl, err := p.fromHeuristic(question, opts)
		return pl, p.count(SourceHeuristic), err
	}

	raw, err := p.askModel(ctx, question)
	if err != nil {
		p.logger.Warn("model plan unavailable, using heuristic planner", err, map[string]interface{}{
			"question_length": len(question),
		})
		pl, err := p.fromHeuristic(question, opts)
		return pl, p.count(SourceLLMFallback), err
	}

	pl, err := p.finish(raw, opts)
	if err != nil {
		return nil, SourceLLM, err
	}
	return pl, p.count(SourceLLM), nil
}

// askModel performs one bounded chat call and parses the reply into a candidate.
func (p *Planner) askModel(ctx context.Context, question string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt(p.now())},
		{Role: llm.RoleUser, Content: question},
	}

	resp, err := p.chat.Chat(ctx, p.cfg.Model, messages)
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}

	raw, strategy, err := parseCandidate(resp.Message.Content)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("model plan parsed", nil, map[string]interface{}{
		"strategy":  strategy,
		"candidate": describeCandidate(raw),
	})
	return raw, nil
}

func (p *Planner) fromHeuristic(question string, opts NormalizeOptions) (*plan.Plan, error) {
	raw, err := plan.ToMap(p.heuristic.Plan(question, opts.Pagination))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return p.finish(raw, opts)
}

func (p *Planner) finish(raw map[string]any, opts NormalizeOptions) (*plan.Plan, error) {
	pl := Normalize(raw, opts)
	if err := plan.Validate(pl, p.cfg.MaxLimit); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return pl, nil
}

func (p *Planner) count(s Source) Source {
	if p.recorder != nil {
		p.recorder.IncrementPlans(string(s))
	}
	return s
}
