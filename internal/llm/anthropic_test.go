package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *AnthropicClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewAnthropicClient(AnthropicConfig{
		APIKey:         "test-key",
		PreferredModel: "claude-3-5-haiku-latest",
		BaseURL:        server.URL,
	})
}

func successBody(model, text string) []byte {
	resp := generateResponse{
		Type:    "message",
		Role:    "assistant",
		Model:   model,
		Content: []content{{Type: "text", Text: text}},
	}
	resp.Usage.InputTokens = 10
	resp.Usage.OutputTokens = 20

	body, _ := json.Marshal(resp) //nolint:errcheck
	return body
}

func TestCandidates_DedupesAndStripsLatestSuffix(t *testing.T) {
	client := NewAnthropicClient(AnthropicConfig{
		APIKey:         "k",
		PreferredModel: "claude-3-5-haiku-latest",
	})

	got := client.candidates()

	require.NotEmpty(t, got)
	assert.Equal(t, "claude-3-5-haiku-latest", got[0])
	assert.Equal(t, "claude-3-5-haiku", got[1])

	seen := make(map[string]bool)
	for _, m := range got {
		assert.False(t, seen[m], "candidate %s listed twice", m)
		seen[m] = true
	}
}

func TestCandidates_PreferredAlreadyInFallbacks(t *testing.T) {
	client := NewAnthropicClient(AnthropicConfig{
		APIKey:         "k",
		PreferredModel: "claude-3-haiku-20240307",
	})

	got := client.candidates()

	count := 0
	for _, m := range got {
		if m == "claude-3-haiku-20240307" {
			count++
		}
	}

	assert.Equal(t, 1, count)
}

func TestGenerateText_FirstCandidateSucceeds(t *testing.T) {
	var requestedModels []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestedModels = append(requestedModels, req.Model)

		w.Write(successBody(req.Model, `{"flashcards":[]}`)) //nolint:errcheck
	})

	resp, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"flashcards":[]}`, resp.Text)
	assert.Equal(t, "claude-3-5-haiku-latest", resp.Model)
	assert.Len(t, requestedModels, 1, "no further candidates after success")
}

func TestGenerateText_ModelNotFoundFallsBack(t *testing.T) {
	var requestedModels []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestedModels = append(requestedModels, req.Model)

		if len(requestedModels) == 1 {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"type":"not_found_error"}}`)) //nolint:errcheck
			return
		}

		w.Write(successBody(req.Model, "second candidate answer")) //nolint:errcheck
	})

	resp, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "second candidate answer", resp.Text)
	assert.Equal(t, "claude-3-5-haiku", resp.Model)
	assert.Len(t, requestedModels, 2, "stops after the first success")
}

func TestGenerateText_OtherErrorIsTerminal(t *testing.T) {
	var calls int

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`)) //nolint:errcheck
	})

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, 1, calls, "non-404 failures must not trigger fallback")
}

func TestGenerateText_EmptyTextTriesNextCandidate(t *testing.T) {
	var requestedModels []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestedModels = append(requestedModels, req.Model)

		if len(requestedModels) == 1 {
			w.Write(successBody(req.Model, "")) //nolint:errcheck
			return
		}

		w.Write(successBody(req.Model, "usable text")) //nolint:errcheck
	})

	resp, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "usable text", resp.Text)
	assert.Len(t, requestedModels, 2)
}

func TestGenerateText_AllCandidatesExhausted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"not_found_error"}}`)) //nolint:errcheck
	})

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all candidate models exhausted")
	assert.Contains(t, err.Error(), "404")
}

func TestGenerateText_MissingAPIKey(t *testing.T) {
	client := NewAnthropicClient(AnthropicConfig{PreferredModel: "claude-3-5-haiku-latest"})

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
