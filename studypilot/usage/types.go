package usage

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// maximum generation/save events per user per calendar month
const MonthlyLimit = 20

// handles usage record database operations
type Repository struct {
	db *pgxpool.Pool
}

// one append-only usage marker row counted toward the monthly quota
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Tool      string    `json:"tool"`
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
