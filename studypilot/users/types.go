package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an account in the system
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"`
	Provider      string    `json:"provider,omitempty"` // empty for password accounts
	ProviderID    string    `json:"-"`
	Tier          string    `json:"tier"` // free, pro
	ReferralCode  string    `json:"referral_code"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// contains data for creating a password account
type CreateUserRequest struct {
	Email             string
	Name              string
	PasswordHash      string
	ReferralCode      string
	VerificationToken string
}
