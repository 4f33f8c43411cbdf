package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSendsNonStreamingJSONRequest(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"model":"m1","message":{"role":"assistant","content":"{\"intent\":\"count\"}"},"done":true}`))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL + "/", Model: "m1", APIKey: "secret"})
	resp, err := c.Chat(context.Background(), "", []Message{{Role: RoleUser, Content: "hola"}})

	require.NoError(t, err)
	assert.Equal(t, `{"intent":"count"}`, resp.Message.Content)
	assert.Equal(t, "m1", got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, "json", got.Format)
	assert.Len(t, got.Messages, 1)
}

func TestChatReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(Config{Endpoint: srv.URL}).Chat(context.Background(), "x", []Message{{Role: RoleUser, Content: "q"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 404")
	assert.Contains(t, err.Error(), "model not found")
}

func TestChatEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"  "}}`))
	}))
	defer srv.Close()

	_, err := NewClient(Config{Endpoint: srv.URL}).Chat(context.Background(), "", []Message{{Role: RoleUser, Content: "q"}})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestChatHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(Config{Endpoint: srv.URL}).Chat(ctx, "", []Message{{Role: RoleUser, Content: "q"}})
	assert.Error(t, err)
}
