package users

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Provider,
		&user.ProviderID,
		&user.Tier,
		&user.ReferralCode,
		&user.EmailVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// creates a password account
func (r *Repository) CreateWithPassword(ctx context.Context, req CreateUserRequest) (*User, error) {
	return r.scanUser(r.db.QueryRow(
		ctx,
		queryCreateWithPassword,
		req.Email,
		req.Name,
		req.PasswordHash,
		req.ReferralCode,
		req.VerificationToken,
	))
}

// finds a user by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email, name, referralCode string,
) (*User, error) {
	return r.scanUser(r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		provider,
		providerID,
		email,
		name,
		referralCode,
	))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	user, err := r.scanUser(r.db.QueryRow(ctx, queryFindByID, userID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	return user, err
}

// finds a user by email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, err := r.scanUser(r.db.QueryRow(ctx, queryFindByEmail, email))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	return user, err
}

// marks the account holding this verification token as verified
func (r *Repository) VerifyEmail(ctx context.Context, token string) error {
	var id string

	err := r.db.QueryRow(ctx, queryVerifyEmail, token).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrInvalidToken
	}

	return err
}

// stores a password reset token for the account with this email
func (r *Repository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	var id string

	err := r.db.QueryRow(ctx, querySetResetToken, token, expiresAt, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}

	return err
}

// replaces the password for the account holding an unexpired reset token
func (r *Repository) ResetPassword(ctx context.Context, token, passwordHash string) error {
	var id string

	err := r.db.QueryRow(ctx, queryResetPassword, passwordHash, token).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrInvalidToken
	}

	return err
}
