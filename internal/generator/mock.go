package generator

import "fmt"

// builds a deterministic canned result for development without a model
// backend; always flagged as mocked
func mockResult(req Request) *Result {
	count := itemCount(req.Tool, req.Settings.Count)

	switch req.Tool {
	case ToolFlashcards:
		cards := make([]Card, 0, count)
		for i := 1; i <= count; i++ {
			cards = append(cards, Card{
				Question: fmt.Sprintf("Sample question %d about: %s", i, req.Text),
				Answer:   fmt.Sprintf("Sample answer %d", i),
			})
		}
		return &Result{Flashcards: cards, Mocked: true}

	case ToolQuiz:
		questions := make([]QuizQuestion, 0, count)
		for i := 1; i <= count; i++ {
			questions = append(questions, QuizQuestion{
				Question:    fmt.Sprintf("Sample question %d about: %s", i, req.Text),
				Options:     []string{"Option A", "Option B", "Option C", "Option D"},
				Answer:      "Option A",
				Explanation: "Option A is the sample correct answer.",
			})
		}
		return &Result{Quiz: questions, Mocked: true}

	case ToolPlan:
		steps := make([]string, 0, count)
		for i := 1; i <= count; i++ {
			steps = append(steps, fmt.Sprintf("Step %d: review %s", i, req.Text))
		}
		return &Result{Plan: steps, Mocked: true}

	default:
		return &Result{
			Explanation: fmt.Sprintf("This is a sample explanation of: %s", req.Text),
			Mocked:      true,
		}
	}
}
