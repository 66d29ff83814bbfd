package transfer

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
	}{
		{
			name: "flashcards payload",
			in: map[string]any{
				"flashcards": []any{
					map[string]any{"question": "What is photosynthesis?", "answer": "Conversion of light to chemical energy"},
				},
				"type":  "flashcards",
				"title": "Bio",
			},
		},
		{
			name: "unicode strings",
			in: map[string]any{
				"explanation": "Héllo wörld ✓ 日本語 — mixed scripts",
				"type":        "explain",
			},
		},
		{
			name: "nested structures",
			in: map[string]any{
				"quiz": []any{
					map[string]any{
						"question": "2+2?",
						"options":  []any{"3", "4"},
						"answer":   "4",
					},
				},
			},
		},
		{
			name: "empty object",
			in:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Encode(tt.in)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			var out map[string]any
			require.NoError(t, Decode(token, &out))
			assert.Equal(t, tt.in, out)
		})
	}
}

func TestDecode_AlreadyUnescapedToken(t *testing.T) {
	in := map[string]any{"title": "Spaced Repetition & Recall?"}

	token, err := Encode(in)
	require.NoError(t, err)

	// HTTP frameworks hand query params over already percent-decoded
	unescaped, err := url.QueryUnescape(token)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, Decode(unescaped, &out))
	assert.Equal(t, in, out)
}

func TestDecode_Malformed(t *testing.T) {
	var out map[string]any

	assert.Error(t, Decode("", &out))
	assert.Error(t, Decode("!!!not-base64!!!", &out))

	// valid base64 wrapping invalid JSON
	assert.Error(t, Decode("bm90LWpzb24=", &out))
}

func TestEncode_TokenIsURLSafe(t *testing.T) {
	in := map[string]any{"text": "data with + and / and = characters to force base64 symbols ~~~"}

	token, err := Encode(in)
	require.NoError(t, err)

	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, " ")
}
