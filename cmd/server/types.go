package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/internal/config"
	"github.com/studypilot/server/internal/generator"
	"github.com/studypilot/server/internal/llm"
	"github.com/studypilot/server/internal/mailer"
	"github.com/studypilot/server/studypilot/resources"
	"github.com/studypilot/server/studypilot/usage"
	"github.com/studypilot/server/studypilot/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	verifier     *auth.Verifier
	userRepo     *users.Repository
	usageRepo    *usage.Repository
	resourceRepo *resources.Repository
	services     *Services
	router       *gin.Engine
}

// holds all external service clients
type Services struct {
	LLM       llm.TextGenerator
	Generator *generator.Generator
	Mailer    mailer.Mailer
}
