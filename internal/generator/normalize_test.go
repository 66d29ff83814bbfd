package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StrictJSON(t *testing.T) {
	raw := `{"flashcards":[{"question":"Q","answer":"A"}]}`

	result := Normalize(raw)

	require.NotNil(t, result)
	require.Len(t, result.Flashcards, 1)
	assert.Equal(t, "Q", result.Flashcards[0].Question)
	assert.Equal(t, "A", result.Flashcards[0].Answer)
	assert.Equal(t, ToolFlashcards, result.Kind())
}

func TestNormalize_JSONEmbeddedInProse(t *testing.T) {
	raw := `Sure! Here's your data: {"flashcards":[{"question":"Q","answer":"A"}]} Hope that helps!`

	result := Normalize(raw)

	require.NotNil(t, result)
	require.Len(t, result.Flashcards, 1)
	assert.Equal(t, "Q", result.Flashcards[0].Question)
	assert.Equal(t, "A", result.Flashcards[0].Answer)
}

func TestNormalize_GarbageWrappedAsExplanation(t *testing.T) {
	raw := "I could not produce JSON today, sorry."

	result := Normalize(raw)

	require.NotNil(t, result)
	assert.Equal(t, raw, result.Explanation)
	assert.Equal(t, ToolExplain, result.Kind())
}

func TestNormalize_Total(t *testing.T) {
	// any input yields a non-nil, non-empty-union result
	inputs := []string{
		"",
		"{}",
		"{broken json",
		"}{",
		`{"unknown":"keys"}`,
		`null`,
		`[1,2,3]`,
		"prose { not json } more prose",
		`{"quiz":[{"question":"Q1","options":["a","b"],"answer":"a"}]}`,
		`{"plan":["read","practice"]}`,
		`{"explanation":"plain"}`,
		"unicode ✓ éàü 日本語",
	}

	for _, raw := range inputs {
		result := Normalize(raw)
		require.NotNil(t, result, "input %q", raw)

		if result.Empty() {
			// only possible when the raw text itself is empty
			assert.Equal(t, "", raw)
		}
	}
}

func TestNormalize_QuizShape(t *testing.T) {
	raw := "```json\n" + `{"quiz":[{"question":"Capital of France?","options":["Paris","Lyon"],"answer":"Paris","explanation":"Paris is the capital."}]}` + "\n```"

	result := Normalize(raw)

	require.Len(t, result.Quiz, 1)
	assert.Equal(t, "Paris", result.Quiz[0].Answer)
	assert.Equal(t, []string{"Paris", "Lyon"}, result.Quiz[0].Options)
}

func TestNormalize_PlanShape(t *testing.T) {
	result := Normalize(`{"plan":["step one","step two","step three"]}`)

	assert.Equal(t, []string{"step one", "step two", "step three"}, result.Plan)
	assert.Equal(t, ToolPlan, result.Kind())
}
