package generate

import "github.com/studypilot/server/internal/generator"

// Request represents the request body for study material generation
type Request struct {
	Tool     string             `json:"tool"`
	Text     string             `json:"text"`
	Settings generator.Settings `json:"settings"`
}
