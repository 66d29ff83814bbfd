package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/studypilot/server/internal/logger"
	"golang.org/x/time/rate"
)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
	defaultMaxTokens     = 4096
	defaultTemperature   = 0.7
)

// known-good models tried after the caller's preferred model
var fallbackModels = []string{
	"claude-3-5-haiku-20241022",
	"claude-3-5-sonnet-20241022",
	"claude-3-haiku-20240307",
}

// shared HTTP client for Anthropic API calls; the timeout bounds the
// tail latency of the candidate fallback loop
var anthropicHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Anthropic API calls (50 requests/second with burst capacity of 10)
var anthropicRateLimiter = rate.NewLimiter(50, 10)

type generateRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
}

type generateResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Role    string    `json:"role"`
	Content []content `json:"content"`
	Model   string    `json:"model"`
	Usage   struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type AnthropicConfig struct {
	APIKey         string
	PreferredModel string
	MaxTokens      int
	Temperature    float32
	BaseURL        string // overridable for tests; defaults to the Anthropic API
}

// calls the Anthropic messages API, walking an ordered candidate model
// list until one produces usable text
type AnthropicClient struct {
	config     AnthropicConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewAnthropicClient(config AnthropicConfig) *AnthropicClient {
	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}

	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}

	if config.BaseURL == "" {
		config.BaseURL = anthropicMessagesURL
	}

	return &AnthropicClient{
		config:     config,
		httpClient: anthropicHTTPClient,
		limiter:    anthropicRateLimiter,
	}
}

func (c *AnthropicClient) Model() string {
	return c.config.PreferredModel
}

// returns the ordered, deduplicated model candidates: the preferred
// model, its normalized form without the "-latest" suffix, then the
// fixed fallback sequence
func (c *AnthropicClient) candidates() []string {
	ordered := []string{
		c.config.PreferredModel,
		strings.TrimSuffix(c.config.PreferredModel, "-latest"),
	}
	ordered = append(ordered, fallbackModels...)

	seen := make(map[string]bool, len(ordered))
	result := make([]string, 0, len(ordered))

	for _, model := range ordered {
		if model == "" || seen[model] {
			continue
		}

		seen[model] = true
		result = append(result, model)
	}

	return result
}

// tries each candidate model in order; a 404 ("model not found") or an
// empty response moves to the next candidate, any other failure is
// terminal, and the first non-empty text wins
func (c *AnthropicClient) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	if c.config.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key not configured")
	}

	var lastModel string
	var lastStatus int
	var lastBody string

	for _, model := range c.candidates() {
		resp, status, body, err := c.generateWithModel(ctx, model, req)

		lastModel = model
		lastStatus = status
		lastBody = body

		if err != nil {
			return nil, err
		}

		if status == http.StatusNotFound {
			logger.Debug("model not available, trying next candidate", "model", model)
			continue
		}

		if status != http.StatusOK {
			return nil, fmt.Errorf("generation request failed with status %d (model %s): %s", status, model, body)
		}

		text := extractText(resp)
		if text == "" {
			logger.Debug("model returned no usable text, trying next candidate", "model", model)
			continue
		}

		return &TextGenerationResponse{
			Text:  text,
			Model: model,
			Usage: Usage{
				InputTokens:  resp.Usage.InputTokens,
				OutputTokens: resp.Usage.OutputTokens,
			},
		}, nil
	}

	return nil, fmt.Errorf("all candidate models exhausted; last tried %s (status %d): %s", lastModel, lastStatus, lastBody)
}

// issues one request for a single candidate model; transport errors are
// returned as err, HTTP-level failures via status and body
func (c *AnthropicClient) generateWithModel(ctx context.Context, model string, req TextGenerationRequest) (*generateResponse, int, string, error) {
	reqBody := generateRequest{
		Model:       model,
		MaxTokens:   c.config.MaxTokens,
		System:      req.SystemPrompt,
		Temperature: c.config.Temperature,
		Messages:    req.Messages,
	}

	if req.MaxTokens > 0 {
		reqBody.MaxTokens = req.MaxTokens
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.config.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, "", fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, resp.StatusCode, string(body), nil
	}

	var apiResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, 0, "", fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, resp.StatusCode, "", nil
}

// concatenates the text parts of a response
func extractText(resp *generateResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range resp.Content {
		if part.Type == "text" {
			builder.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(builder.String())
}
