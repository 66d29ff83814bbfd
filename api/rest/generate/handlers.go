package generate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/auth"
	apierrors "github.com/studypilot/server/internal/errors"
	"github.com/studypilot/server/internal/generator"
)

// creates a handler for study material generation
func Handler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "Missing tool or text", nil)
			return
		}

		tool, ok := generator.ParseTool(req.Tool)
		if !ok || req.Text == "" {
			apierrors.BadRequest(c, "Missing tool or text", nil)
			return
		}

		result, err := gen.Generate(c.Request.Context(), userID, generator.Request{
			Tool:     tool,
			Text:     req.Text,
			Settings: req.Settings,
		})

		if err != nil {
			switch {
			case errors.Is(err, generator.ErrQuotaExceeded):
				apierrors.QuotaExceeded(c, "")
			case errors.Is(err, generator.ErrNotConfigured):
				apierrors.InternalError(c, "generation backend not configured", err)
			default:
				apierrors.InternalError(c, "failed to generate content", err)
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
