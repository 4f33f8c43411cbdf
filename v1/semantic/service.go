package semantic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/resguardo/inventory-query/v1/inventory"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/tracer"
	"github.com/resguardo/inventory-query/v1/vectordb"
)

// Embedder turns text into dense vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Logger is the subset of the logger used by the service.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
}

// Recorder observes candidate set sizes.
type Recorder interface {
	ObserveSemanticCandidates(collection string, n int)
}

// Service resolves similarity questions to candidate inventory ids.
type Service struct {
	cfg      Config
	embedder Embedder
	index    vectordb.Service
	logger   Logger
	recorder Recorder
	tracer   *tracer.Tracer
	points   *prometheus.GaugeVec
}

// NewService returns a Service. A nil embedder or index leaves it disabled.
func NewService(cfg Config, embedder Embedder, index vectordb.Service, logger Logger, recorder Recorder) *Service {
	return &Service{
		cfg:      cfg,
		embedder: embedder,
		index:    index,
		logger:   logger,
		recorder: recorder,
	}
}

// WithTracer records a span per retrieval.
func (s *Service) WithTracer(t *tracer.Tracer) *Service {
	s.tracer = t
	return s
}

// WithPointsGauge makes Collection publish the collection's point count in g,
// labelled by collection name.
func (s *Service) WithPointsGauge(g *prometheus.GaugeVec) *Service {
	s.points = g
	return s
}

// Enabled reports whether Retrieve can return candidates.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled && s.embedder != nil && s.index != nil
}

// Retrieve returns candidate ids for p's semantic query, most similar first.
// It returns nil without error when retrieval is disabled or the query is blank.
func (s *Service) Retrieve(ctx context.Context, p *plan.Plan) ([]int64, error) {
	if !s.Enabled() || p.Semantic.Query == nil {
		return nil, nil
	}
	query := strings.TrimSpace(*p.Semantic.Query)
	if query == "" {
		return nil, nil
	}

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.StartSpan(ctx, "semantic.Retrieve")
		defer span.End()
	}
	fail := func(err error) ([]int64, error) {
		if span != nil {
			s.tracer.RecordErrorOnSpan(span, err)
		}
		return nil, err
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return fail(fmt.Errorf("embed query: %w", err))
	}

	req := vectordb.SearchRequest{
		CollectionName: s.cfg.Collection,
		Vector:         vector,
		TopK:           p.Semantic.TopK,
		Filters:        searchFilters(p.Filters),
	}

	results, err := s.index.Search(ctx, req)
	if err != nil {
		return fail(fmt.Errorf("vector search: %w", err))
	}

	var hits []vectordb.SearchResult
	if len(results) > 0 {
		hits = results[0]
	}
	ids := candidateIDs(hits)

	if span != nil {
		s.tracer.SetAttributes(span, map[string]interface{}{
			"semantic.collection": s.cfg.Collection,
			"semantic.candidates": len(ids),
		})
	}
	if s.recorder != nil {
		s.recorder.ObserveSemanticCandidates(s.cfg.Collection, len(ids))
	}
	if s.logger != nil {
		s.logger.Debug("semantic candidates", nil, map[string]interface{}{
			"collection": s.cfg.Collection,
			"hits":       len(hits),
			"candidates": len(ids),
		})
	}
	return ids, nil
}

// candidateIDs keeps hit order, skipping ids that are not base-10 integers and
// repeated ids.
func candidateIDs(hits []vectordb.SearchResult) []int64 {
	ids := make([]int64, 0, len(hits))
	seen := make(map[int64]struct{}, len(hits))
	for _, h := range hits {
		id, err := strconv.ParseInt(h.ID, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Collection reports the configured collection's size and point count. It
// returns nil without error when retrieval is disabled.
func (s *Service) Collection(ctx context.Context) (*vectordb.Collection, error) {
	if !s.Enabled() {
		return nil, nil
	}
	c, err := s.index.GetCollection(ctx, s.cfg.Collection)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", s.cfg.Collection, err)
	}
	if s.points != nil {
		s.points.WithLabelValues(s.cfg.Collection).Set(float64(c.PointCount))
	}
	return c, nil
}

// Index embeds items and upserts one point per item, keyed by the inventory id.
func (s *Service) Index(ctx context.Context, items []inventory.Item) error {
	if !s.Enabled() || len(items) == 0 {
		return nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = Document(item)
	}
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed items: %w", err)
	}
	if len(vectors) != len(items) {
		return fmt.Errorf("embed items: got %d vectors for %d items", len(vectors), len(items))
	}

	inputs := make([]vectordb.EmbeddingInput, len(items))
	for i, item := range items {
		inputs[i] = vectordb.EmbeddingInput{
			ID:      strconv.FormatInt(item.ID, 10),
			Vector:  vectors[i],
			Payload: Payload(item),
		}
	}
	if err := s.index.Insert(ctx, s.cfg.Collection, inputs); err != nil {
		return fmt.Errorf("upsert items: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("indexed inventory items", nil, map[string]interface{}{
			"collection": s.cfg.Collection,
			"count":      len(items),
		})
	}
	return nil
}
