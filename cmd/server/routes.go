package main

import (
	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/api/rest/auth"
	"github.com/studypilot/server/api/rest/generate"
	"github.com/studypilot/server/api/rest/health"
	"github.com/studypilot/server/api/rest/resources"
	"github.com/studypilot/server/api/rest/results"
	"github.com/studypilot/server/api/rest/usage"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))
	router.Use(RateLimitMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo, server.verifier, server.services.Mailer)
		generate.RegisterRoutes(v1, server.verifier, server.services.Generator)
		usage.RegisterRoutes(v1, server.verifier, server.usageRepo)
		resources.RegisterRoutes(v1, server.verifier, server.resourceRepo, server.usageRepo)
		results.RegisterRoutes(v1)
	}
}
