package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultModel = "claude-3-5-haiku-latest"

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	// production environments may not have a .env file
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	preferredModel := os.Getenv("GENERATION_MODEL")
	baseURL := os.Getenv("BASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if jwtSecret == "" && environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required in production")
	}

	if preferredModel == "" {
		preferredModel = defaultModel
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	allowUnverified := os.Getenv("AUTH_ALLOW_UNVERIFIED_TOKENS") == "true"
	if allowUnverified && environment == "production" {
		return nil, fmt.Errorf("AUTH_ALLOW_UNVERIFIED_TOKENS must not be enabled in production")
	}

	return &Config{
		DatabaseURL:           databaseURL,
		JWTSecret:             jwtSecret,
		SessionSecret:         sessionSecret,
		AnthropicKey:          anthropicKey,
		PreferredModel:        preferredModel,
		BaseURL:               baseURL,
		Environment:           environment,
		AllowUnverifiedTokens: allowUnverified,
		MockGeneration:        os.Getenv("GENERATION_MOCK") == "true",
	}, nil
}
