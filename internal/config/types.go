package config

// holds all runtime configuration for the StudyPilot server
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	SessionSecret  string
	AnthropicKey   string
	PreferredModel string
	BaseURL        string
	Environment    string

	// dev-only escape hatch: accept bearer tokens without signature
	// verification when the verifying secret is unavailable
	AllowUnverifiedTokens bool

	// serve canned generation results instead of calling the model backend
	MockGeneration bool
}

// reports whether the server is running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
