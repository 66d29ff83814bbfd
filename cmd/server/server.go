package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/internal/config"
	"github.com/studypilot/server/studypilot/resources"
	"github.com/studypilot/server/studypilot/usage"
	"github.com/studypilot/server/studypilot/users"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// small pool, hosted postgres poolers allow few connections
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// PgBouncer in transaction mode doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	usageRepo := usage.NewRepository(db)
	resourceRepo := resources.NewRepository(db)

	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.AllowUnverifiedTokens)

	services := InitializeServices(cfg, usageRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:           db,
		config:       cfg,
		verifier:     verifier,
		userRepo:     userRepo,
		usageRepo:    usageRepo,
		resourceRepo: resourceRepo,
		services:     services,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
