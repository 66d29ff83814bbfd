package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studypilot/server/internal/llm"
)

// implements UsageLedger for testing
type mockLedger struct {
	count     int
	countErr  error
	recordErr error
	recorded  []string
}

func (m *mockLedger) CountSince(_ context.Context, _ string, _ time.Time) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}

	return m.count, nil
}

func (m *mockLedger) Record(_ context.Context, _ string, tool, _ string) error {
	if m.recordErr != nil {
		return m.recordErr
	}

	m.recorded = append(m.recorded, tool)
	return nil
}

// implements llm.TextGenerator for testing
type mockTextGenerator struct {
	generateFunc func(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error)
	calls        int
}

func (m *mockTextGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	m.calls++

	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}

	return &llm.TextGenerationResponse{Text: `{"explanation":"ok"}`, Model: "mock-model"}, nil
}

func (m *mockTextGenerator) Model() string {
	return "mock-model"
}

func TestGenerate_Success(t *testing.T) {
	ledger := &mockLedger{count: 0}
	client := &mockTextGenerator{
		generateFunc: func(_ context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			require.Len(t, req.Messages, 1)
			assert.Contains(t, req.Messages[0].Content, "Basics of photosynthesis")

			return &llm.TextGenerationResponse{
				Text:  `{"flashcards":[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]}`,
				Model: "mock-model",
			}, nil
		},
	}

	g := New(ledger, client, false)

	result, err := g.Generate(context.Background(), "user-1", Request{
		Tool:     ToolFlashcards,
		Text:     "Basics of photosynthesis",
		Settings: Settings{Count: 2},
	})

	require.NoError(t, err)
	require.Len(t, result.Flashcards, 2)
	assert.Equal(t, []string{"flashcards"}, ledger.recorded, "usage recorded once")
}

func TestGenerate_QuotaBoundary(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantQuota bool
	}{
		{"under limit", 19, false},
		{"at limit", 20, true},
		{"over limit", 25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &mockLedger{count: tt.count}
			client := &mockTextGenerator{}

			g := New(ledger, client, false)

			_, err := g.Generate(context.Background(), "user-1", Request{
				Tool: ToolExplain,
				Text: "topic",
			})

			if tt.wantQuota {
				assert.ErrorIs(t, err, ErrQuotaExceeded)
				assert.Zero(t, client.calls, "no model call past the quota")
				assert.Empty(t, ledger.recorded, "no usage logged past the quota")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, client.calls)
			}
		})
	}
}

func TestGenerate_LedgerReadFailure(t *testing.T) {
	ledger := &mockLedger{countErr: errors.New("database down")}
	client := &mockTextGenerator{}

	g := New(ledger, client, false)

	_, err := g.Generate(context.Background(), "user-1", Request{Tool: ToolExplain, Text: "x"})

	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestGenerate_RecordFailureSwallowed(t *testing.T) {
	ledger := &mockLedger{recordErr: errors.New("insert failed")}
	client := &mockTextGenerator{}

	g := New(ledger, client, false)

	result, err := g.Generate(context.Background(), "user-1", Request{Tool: ToolExplain, Text: "x"})

	require.NoError(t, err, "usage logging is best effort")
	assert.Equal(t, "ok", result.Explanation)
}

func TestGenerate_NotConfigured(t *testing.T) {
	g := New(&mockLedger{}, nil, false)

	_, err := g.Generate(context.Background(), "user-1", Request{Tool: ToolExplain, Text: "x"})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerate_BackendErrorPropagates(t *testing.T) {
	ledger := &mockLedger{}
	client := &mockTextGenerator{
		generateFunc: func(_ context.Context, _ llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return nil, errors.New("all candidate models exhausted")
		},
	}

	g := New(ledger, client, false)

	_, err := g.Generate(context.Background(), "user-1", Request{Tool: ToolQuiz, Text: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
	assert.Empty(t, ledger.recorded, "no usage logged for failed generations")
}

func TestGenerate_MockMode(t *testing.T) {
	ledger := &mockLedger{}

	g := New(ledger, nil, true)

	result, err := g.Generate(context.Background(), "user-1", Request{
		Tool:     ToolQuiz,
		Text:     "algebra",
		Settings: Settings{Count: 4},
	})

	require.NoError(t, err)
	assert.True(t, result.Mocked)
	assert.Len(t, result.Quiz, 4)
	assert.Contains(t, result.Quiz[0].Options, result.Quiz[0].Answer)
	assert.Equal(t, []string{"quiz"}, ledger.recorded, "mock generations still count toward quota")
}

func TestParseTool(t *testing.T) {
	for _, valid := range []string{"flashcards", "quiz", "explain", "plan"} {
		tool, ok := ParseTool(valid)
		assert.True(t, ok)
		assert.Equal(t, Tool(valid), tool)
	}

	_, ok := ParseTool("essay")
	assert.False(t, ok)

	_, ok = ParseTool("")
	assert.False(t, ok)
}
