package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type inferenceProvider struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

func newInferenceProvider(cfg Config) *inferenceProvider {
	return &inferenceProvider{
		baseURL:      strings.TrimRight(cfg.Endpoint, "/"),
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Create calls the OpenAI-compatible /embeddings endpoint and returns the vectors
// in input order.
func (p *inferenceProvider) Create(ctx context.Context, model string, texts ...string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("inference: no texts provided")
	}
	if model == "" {
		return nil, fmt.Errorf("inference: model is required")
	}

	var parsed embeddingsResponse
	if err := p.postJSON(ctx, p.baseURL+"/embeddings", embeddingsRequest{Model: model, Input: texts}, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("inference: expected %d embeddings, got %d", len(texts), len(parsed.Data))
	}

	out := make([][]float64, len(texts))
	for i, d := range parsed.Data {
		idx := d.Index
		if idx < 0 || idx >= len(out) || out[idx] != nil {
			idx = i
		}
		out[idx] = d.Embedding
	}
	return out, nil
}
