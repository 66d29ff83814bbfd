package generator

import (
	"fmt"
	"strings"
)

const (
	minItemCount = 3
	maxItemCount = 25
)

// default item counts per tool
var defaultCounts = map[Tool]int{
	ToolFlashcards: 10,
	ToolQuiz:       5,
	ToolPlan:       7,
}

// exact JSON shape the model must emit per tool
var shapeTemplates = map[Tool]string{
	ToolFlashcards: `{"flashcards":[{"question":"","answer":""}]}`,
	ToolQuiz:       `{"quiz":[{"question":"","options":["",""],"answer":"","explanation":""}]}`,
	ToolPlan:       `{"plan":["step 1","step 2"]}`,
	ToolExplain:    `{"explanation":"..."}`,
}

// deterministically builds the instruction string for one generation
// request; pure function, no side effects
func BuildPrompt(tool Tool, text string, settings Settings) string {
	var b strings.Builder

	b.WriteString("You are a study material generator. Reply with a single JSON object only: no prose, no markdown fences, no commentary. Every field must be populated with real content.\n\n")

	count := itemCount(tool, settings.Count)

	switch tool {
	case ToolFlashcards:
		fmt.Fprintf(&b, "Create exactly %d flashcards from the study material below.\n", count)
	case ToolQuiz:
		fmt.Fprintf(&b, "Create a multiple-choice quiz with exactly %d questions from the study material below.\n", count)
		b.WriteString("Each question needs at least 2 distinct, non-placeholder options, and the answer field must be exactly equal to one of the options.\n")
	case ToolPlan:
		fmt.Fprintf(&b, "Create a study plan with exactly %d ordered steps for the topic below.\n", count)
	default:
		b.WriteString("Write a clear, thorough explanation of the study material below.\n")
	}

	difficulty := settings.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	fmt.Fprintf(&b, "Target difficulty: %s.\n", difficulty)

	if settings.Subject != "" {
		fmt.Fprintf(&b, "Subject area: %s.\n", settings.Subject)
	}

	if tool == ToolQuiz && settings.QuestionMix != "" && settings.QuestionMix != "mixed" {
		fmt.Fprintf(&b, "Question style: favor %s questions.\n", settings.QuestionMix)
	}

	fmt.Fprintf(&b, "\nRespond with JSON in exactly this shape:\n%s\n", shapeTemplates[tool])

	fmt.Fprintf(&b, "\nStudy material:\n%s\n", text)

	return b.String()
}

// resolves the requested item count against per-tool defaults and the
// allowed range
func itemCount(tool Tool, requested int) int {
	if requested == 0 {
		if d, ok := defaultCounts[tool]; ok {
			return d
		}
		return minItemCount
	}

	if requested < minItemCount {
		return minItemCount
	}

	if requested > maxItemCount {
		return maxItemCount
	}

	return requested
}
