package resources

import (
	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/studypilot/resources"
	"github.com/studypilot/server/studypilot/usage"
)

// registers resource library routes
func RegisterRoutes(router *gin.RouterGroup, verifier *auth.Verifier, resourceRepo *resources.Repository, usageRepo *usage.Repository) {
	group := router.Group("/resources", auth.Middleware(verifier))
	{
		group.POST("", CreateHandler(resourceRepo, usageRepo))
		group.GET("", ListHandler(resourceRepo))
		group.GET("/:id", GetHandler(resourceRepo))
	}
}
