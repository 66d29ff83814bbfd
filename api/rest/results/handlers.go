package results

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/generator"
	"github.com/studypilot/server/internal/logger"
	"github.com/studypilot/server/internal/transfer"
)

// Response wraps a decoded transfer token; result is null when the
// token is missing or malformed so the client renders an empty state
type Response struct {
	Result *generator.Result `json:"result"`
}

// creates a handler that decodes a transfer token from the query string
func ViewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("data")

		var result generator.Result
		if err := transfer.Decode(token, &result); err != nil {
			if token != "" {
				logger.Warn("discarding malformed transfer token", "error", err)
			}
			c.JSON(http.StatusOK, Response{Result: nil})
			return
		}

		c.JSON(http.StatusOK, Response{Result: &result})
	}
}
