package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedCallsEmbeddingsEndpoint(t *testing.T) {
	var got embeddingsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":[{"index":0,"embedding":[0.5,-1,2]}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{Endpoint: srv.URL + "/v1/", Model: "m", ServiceToken: "tok"})
	require.NoError(t, err)

	vec, err := c.Embed(context.Background(), "  laptops dell  ")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -1, 2}, vec)
	assert.Equal(t, embeddingsRequest{Model: "m", Input: []string{"laptops dell"}}, got)
}

func TestEmbedBatchHonoursIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"index":1,"embedding":[2]},{"index":0,"embedding":[1]}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{Endpoint: srv.URL})
	require.NoError(t, err)

	out, err := c.EmbedBatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1}, {2}}, out)
}

func TestEmbedErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewClient(Config{Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = c.Embed(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "overloaded")

	_, err = c.Embed(context.Background(), "   ")
	assert.True(t, errors.Is(err, ErrEmptyText))
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

type stubProvider struct{ vectors [][]float64 }

func (s stubProvider) Create(context.Context, string, ...string) ([][]float64, error) {
	return s.vectors, nil
}

func TestEmbedRejectsEmptyVector(t *testing.T) {
	c := NewClientWithProvider(stubProvider{}, "m")
	_, err := c.Embed(context.Background(), "x")
	assert.Error(t, err)
}
