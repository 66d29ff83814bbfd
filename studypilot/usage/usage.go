package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new usage repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// counts usage records for the user created at or after the given
// instant; monthly windows are computed by timestamp filtering, rows
// are never deleted
func (r *Repository) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, queryCountSince, userID, since).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// appends one usage record for the user
func (r *Repository) Record(ctx context.Context, userID, tool, subject string) error {
	_, err := r.db.Exec(ctx, queryRecord, userID, tool, subject)
	return err
}

// returns the start of the calendar month containing t, in t's location
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
