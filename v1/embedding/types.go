package embedding

import "context"

// Provider contract
type Provider interface {
	// Create generates one embedding per text using the specified model.
	Create(ctx context.Context, model string, texts ...string) ([][]float64, error)
}

type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingsResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}
