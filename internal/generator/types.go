package generator

import (
	"context"
	"time"

	"github.com/studypilot/server/internal/llm"
)

// identifies the requested content kind
type Tool string

const (
	ToolFlashcards Tool = "flashcards"
	ToolQuiz       Tool = "quiz"
	ToolExplain    Tool = "explain"
	ToolPlan       Tool = "plan"
)

// parses a tool name from a request body
func ParseTool(s string) (Tool, bool) {
	switch Tool(s) {
	case ToolFlashcards, ToolQuiz, ToolExplain, ToolPlan:
		return Tool(s), true
	default:
		return "", false
	}
}

// optional generation settings supplied by the client
type Settings struct {
	Count       int    `json:"count,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`  // easy, medium, hard
	Subject     string `json:"subject,omitempty"`     // display label
	QuestionMix string `json:"questionMix,omitempty"` // mixed, concept, recall (quiz only)
}

// one question/answer pair
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// one multiple-choice question
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Result is a tagged union: exactly one of the content fields is
// populated, identified by which key is present in the JSON
type Result struct {
	Flashcards  []Card         `json:"flashcards,omitempty"`
	Quiz        []QuizQuestion `json:"quiz,omitempty"`
	Plan        []string       `json:"plan,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
	Mocked      bool           `json:"mocked,omitempty"`
}

// reports whether no content field is populated
func (r *Result) Empty() bool {
	return len(r.Flashcards) == 0 && len(r.Quiz) == 0 && len(r.Plan) == 0 && r.Explanation == ""
}

// returns the tool that matches the populated content field
func (r *Result) Kind() Tool {
	switch {
	case len(r.Flashcards) > 0:
		return ToolFlashcards
	case len(r.Quiz) > 0:
		return ToolQuiz
	case len(r.Plan) > 0:
		return ToolPlan
	default:
		return ToolExplain
	}
}

// one generation request after handler-level validation
type Request struct {
	Tool     Tool
	Text     string
	Settings Settings
}

// counts and records per-user generation events
type UsageLedger interface {
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
	Record(ctx context.Context, userID, tool, subject string) error
}

// orchestrates one generation request: quota check, prompt build,
// model call, normalization, usage logging
type Generator struct {
	ledger UsageLedger
	client llm.TextGenerator
	mock   bool
}
