package generator

import (
	"encoding/json"
	"strings"
)

// Normalize coerces raw model output into a valid Result. It is a
// total function: strict JSON parse first, then the substring between
// the first '{' and the last '}' to tolerate surrounding prose, and as
// a last resort the raw text is wrapped as an explanation so callers
// always receive some displayable shape.
func Normalize(raw string) *Result {
	trimmed := strings.TrimSpace(raw)

	if result := parseResult(trimmed); result != nil {
		return result
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")

	if start >= 0 && end > start {
		if result := parseResult(trimmed[start : end+1]); result != nil {
			return result
		}
	}

	return &Result{Explanation: raw}
}

// parses candidate JSON into a Result, rejecting objects that populate
// none of the union's content fields
func parseResult(candidate string) *Result {
	if candidate == "" {
		return nil
	}

	var result Result
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil
	}

	if result.Empty() {
		return nil
	}

	return &result
}
