package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studypilot/server/internal/llm"
	"github.com/studypilot/server/internal/logger"
	"github.com/studypilot/server/studypilot/usage"
)

var (
	ErrQuotaExceeded = errors.New("monthly limit reached")
	ErrNotConfigured = errors.New("generation backend not configured")
)

// creates a generator; client may be nil when no backend is configured,
// in which case only mock mode can serve requests
func New(ledger UsageLedger, client llm.TextGenerator, mock bool) *Generator {
	return &Generator{
		ledger: ledger,
		client: client,
		mock:   mock,
	}
}

// runs the generation pipeline for one authenticated request. The
// usage record write is best effort: a failure is logged and the
// already-generated result is still returned.
func (g *Generator) Generate(ctx context.Context, userID string, req Request) (*Result, error) {
	since := usage.StartOfMonth(time.Now())

	count, err := g.ledger.CountSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to check usage: %w", err)
	}

	if count >= usage.MonthlyLimit {
		return nil, ErrQuotaExceeded
	}

	result, err := g.produce(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := g.ledger.Record(ctx, userID, string(req.Tool), req.Settings.Subject); err != nil {
		logger.ErrorErr(err, "failed to record usage",
			"user_id", userID,
			"tool", req.Tool,
		)
	}

	return result, nil
}

func (g *Generator) produce(ctx context.Context, req Request) (*Result, error) {
	if g.mock {
		return mockResult(req), nil
	}

	if g.client == nil {
		return nil, ErrNotConfigured
	}

	prompt := BuildPrompt(req.Tool, req.Text, req.Settings)

	resp, err := g.client.GenerateText(ctx, llm.TextGenerationRequest{
		Messages: []llm.Message{{Role: "user", Content: prompt}},
	})

	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	logger.Debug("generation served",
		"tool", req.Tool,
		"model", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)

	return Normalize(resp.Text), nil
}
