package generate

import (
	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/internal/generator"
)

// registers generation routes
func RegisterRoutes(router *gin.RouterGroup, verifier *auth.Verifier, gen *generator.Generator) {
	router.POST("/generate", auth.Middleware(verifier), Handler(gen))
}
