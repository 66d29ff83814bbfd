package resources

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrResourceNotFound = errors.New("resource not found")

// creates a new resource repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) scanResource(row pgx.Row) (*Resource, error) {
	var res Resource

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.Type,
		&res.Title,
		&res.Subject,
		&res.Content,
		&res.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &res, nil
}

// saves a finished result for a user
func (r *Repository) Create(ctx context.Context, userID string, req CreateResourceRequest) (*Resource, error) {
	return r.scanResource(r.db.QueryRow(
		ctx,
		queryCreate,
		uuid.New().String(),
		userID,
		req.Type,
		req.Title,
		req.Subject,
		req.Content,
	))
}

// lists a user's saved resources, newest first
func (r *Repository) List(ctx context.Context, userID string) ([]Resource, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Resource{}
	for rows.Next() {
		res, err := r.scanResource(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *res)
	}

	return list, rows.Err()
}

// fetches a single resource; ownership is enforced in the query
func (r *Repository) Get(ctx context.Context, resourceID, userID string) (*Resource, error) {
	res, err := r.scanResource(r.db.QueryRow(ctx, queryGet, resourceID, userID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResourceNotFound
	}

	return res, err
}
