package usage

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/internal/errors"
	"github.com/studypilot/server/studypilot/usage"
)

// Response represents the current month's usage
type Response struct {
	Usage int `json:"usage"`
	Limit int `json:"limit"`
}

// creates a handler that reports the user's usage for the current month
func Handler(usageRepo *usage.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		count, err := usageRepo.CountSince(c.Request.Context(), userID, usage.StartOfMonth(time.Now()))
		if err != nil {
			errors.InternalError(c, "failed to load usage", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Usage: count,
			Limit: usage.MonthlyLimit,
		})
	}
}
