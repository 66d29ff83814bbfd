package usage

import (
	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/studypilot/usage"
)

// registers usage routes
func RegisterRoutes(router *gin.RouterGroup, verifier *auth.Verifier, usageRepo *usage.Repository) {
	router.GET("/usage", auth.Middleware(verifier), Handler(usageRepo))
}
