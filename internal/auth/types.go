package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// verifies bearer tokens and issues new ones
type Verifier struct {
	secret          string
	allowUnverified bool
}
