package auth

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/studypilot/server/internal/config"
)

// sets up all OAuth providers using goth
func InitializeProviders(cfg *config.Config) error {
	if cfg.SessionSecret == "" {
		// OAuth sign-in stays disabled; email/password auth still works
		return nil
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	isHTTPS := strings.HasPrefix(cfg.BaseURL, "https://")

	// cookie only needs to survive the OAuth redirect round trip
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   isHTTPS,
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	var providers []goth.Provider

	if os.Getenv("GOOGLE_CLIENT_ID") != "" && os.Getenv("GOOGLE_CLIENT_SECRET") != "" {
		providers = append(providers, google.New(
			os.Getenv("GOOGLE_CLIENT_ID"),
			os.Getenv("GOOGLE_CLIENT_SECRET"),
			cfg.BaseURL+"/api/v1/auth/google/callback",
			"email", "profile",
		))
	}

	if os.Getenv("GITHUB_CLIENT_ID") != "" && os.Getenv("GITHUB_CLIENT_SECRET") != "" {
		providers = append(providers, github.New(
			os.Getenv("GITHUB_CLIENT_ID"),
			os.Getenv("GITHUB_CLIENT_SECRET"),
			cfg.BaseURL+"/api/v1/auth/github/callback",
			"user:email",
		))
	}

	goth.UseProviders(providers...)
	return nil
}
