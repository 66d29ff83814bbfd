package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/studypilot/server/internal/logger"
)

const tokenLifetime = 7 * 24 * time.Hour

// creates a verifier; allowUnverified enables the insecure dev-only
// fallback that decodes token claims without checking the signature
func NewVerifier(secret string, allowUnverified bool) *Verifier {
	return &Verifier{
		secret:          secret,
		allowUnverified: allowUnverified,
	}
}

// creates a signed JWT for the user
func (v *Verifier) GenerateToken(userID, email string) (string, error) {
	if v.secret == "" {
		return "", fmt.Errorf("signing secret not configured")
	}

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(v.secret))
}

// validates a bearer token and returns its claims; when signature
// verification is impossible and the insecure fallback is enabled,
// claims are extracted from the payload segment without verification
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims, err := v.verifySigned(tokenString)
	if err == nil {
		return claims, nil
	}

	if !v.allowUnverified {
		return nil, err
	}

	// non-production trust boundary: the token's signature is NOT checked
	claims, fallbackErr := DecodeUnverified(tokenString)
	if fallbackErr != nil {
		return nil, err
	}

	logger.Warn("accepted bearer token without signature verification",
		"user_id", claims.UserID,
	)

	return claims, nil
}

func (v *Verifier) verifySigned(tokenString string) (*Claims, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("signing secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(v.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// extracts claims from a JWT payload segment without verifying the
// signature; only for local development where no secret is configured
func DecodeUnverified(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode token payload: %w", err)
	}

	var raw struct {
		UserID string `json:"user_id"`
		UID    string `json:"uid"`
		Sub    string `json:"sub"`
		Email  string `json:"email"`
	}

	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse token payload: %w", err)
	}

	userID := raw.UserID
	if userID == "" {
		userID = raw.UID
	}
	if userID == "" {
		userID = raw.Sub
	}

	if userID == "" {
		return nil, fmt.Errorf("no subject claim in token payload")
	}

	return &Claims{UserID: userID, Email: raw.Email}, nil
}
