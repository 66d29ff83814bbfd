package generate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studypilot/server/internal/generator"
	"github.com/studypilot/server/internal/llm"
)

type stubLedger struct {
	count int
}

func (s *stubLedger) CountSince(_ context.Context, _ string, _ time.Time) (int, error) {
	return s.count, nil
}

func (s *stubLedger) Record(_ context.Context, _, _, _ string) error {
	return nil
}

type stubClient struct {
	text string
}

func (s *stubClient) GenerateText(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	return &llm.TextGenerationResponse{Text: s.text, Model: "stub"}, nil
}

func (s *stubClient) Model() string { return "stub" }

func setupRouter(gen *generator.Generator, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/generate", func(c *gin.Context) {
		if authenticated {
			c.Set("user_id", "user-1")
		}
		c.Next()
	}, Handler(gen))

	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Success(t *testing.T) {
	gen := generator.New(
		&stubLedger{count: 0},
		&stubClient{text: `{"flashcards":[{"question":"Q","answer":"A"}]}`},
		false,
	)
	router := setupRouter(gen, true)

	w := postJSON(router, `{"tool":"flashcards","text":"mitosis phases"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"flashcards"`)
}

func TestHandler_Unauthenticated(t *testing.T) {
	gen := generator.New(&stubLedger{}, &stubClient{}, false)
	router := setupRouter(gen, false)

	w := postJSON(router, `{"tool":"quiz","text":"anything"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MissingToolOrText(t *testing.T) {
	gen := generator.New(&stubLedger{}, &stubClient{}, false)
	router := setupRouter(gen, true)

	cases := []string{
		`{"text":"no tool"}`,
		`{"tool":"flashcards"}`,
		`{"tool":"essay","text":"unknown tool"}`,
		`not json`,
	}

	for _, body := range cases {
		w := postJSON(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Missing tool or text", body)
	}
}

func TestHandler_QuotaExceeded(t *testing.T) {
	gen := generator.New(&stubLedger{count: 20}, &stubClient{}, false)
	router := setupRouter(gen, true)

	w := postJSON(router, `{"tool":"explain","text":"entropy"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "quota_exceeded")
}

func TestHandler_BackendNotConfigured(t *testing.T) {
	gen := generator.New(&stubLedger{}, nil, false)
	router := setupRouter(gen, true)

	w := postJSON(router, `{"tool":"plan","text":"exam in two weeks"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
