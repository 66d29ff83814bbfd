package resources

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studypilot/server/internal/generator"
)

// handles resource database operations
type Repository struct {
	db *pgxpool.Pool
}

// valid resource types; "both" bundles a flashcard set and a quiz
// saved together
const (
	TypeFlashcards = "flashcards"
	TypeQuiz       = "quiz"
	TypeExplain    = "explain"
	TypePlan       = "plan"
	TypeBoth       = "both"
)

// reports whether t names a persistable resource type
func IsValidType(t string) bool {
	switch t {
	case TypeFlashcards, TypeQuiz, TypeExplain, TypePlan, TypeBoth:
		return true
	default:
		return false
	}
}

// the stored content union; for type "both" the flashcards and quiz
// fields are populated together
type Content struct {
	Flashcards  []generator.Card         `json:"flashcards,omitempty"`
	Quiz        []generator.QuizQuestion `json:"quiz,omitempty"`
	Plan        []string                 `json:"plan,omitempty"`
	Explanation string                   `json:"explanation,omitempty"`
}

func (c Content) Value() (driver.Value, error) {
	bytes, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (c *Content) Scan(value interface{}) error {
	if value == nil {
		*c = Content{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported content column type %T", value)
	}
}

// represents a saved study set, exclusively owned by one user
type Resource struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject,omitempty"`
	Content   Content   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// contains data for saving a finished result
type CreateResourceRequest struct {
	Type    string  `json:"type" binding:"required"`
	Title   string  `json:"title,omitempty" binding:"max=200"`
	Subject string  `json:"subject,omitempty" binding:"max=100"`
	Content Content `json:"content" binding:"required"`
}
