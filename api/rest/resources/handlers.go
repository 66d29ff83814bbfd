package resources

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/internal/errors"
	"github.com/studypilot/server/internal/logger"
	"github.com/studypilot/server/studypilot/resources"
	"github.com/studypilot/server/studypilot/usage"
)

// creates a handler that saves a finished result to the user's library.
// Saves count against the same monthly limit as generations.
func CreateHandler(resourceRepo *resources.Repository, usageRepo *usage.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req resources.CreateResourceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !resources.IsValidType(req.Type) {
			errors.BadRequest(c, "invalid resource type", nil)
			return
		}

		count, err := usageRepo.CountSince(c.Request.Context(), userID, usage.StartOfMonth(time.Now()))
		if err != nil {
			errors.InternalError(c, "failed to check usage", err)
			return
		}

		if count >= usage.MonthlyLimit {
			errors.QuotaExceeded(c, "")
			return
		}

		resource, err := resourceRepo.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to save resource", err)
			return
		}

		if err := usageRepo.Record(c.Request.Context(), userID, "save:"+req.Type, req.Subject); err != nil {
			logger.ErrorErr(err, "failed to record usage",
				"user_id", userID,
				"resource_id", resource.ID,
			)
		}

		c.JSON(http.StatusCreated, ResourceResponse{Resource: resource})
	}
}

// creates a handler that lists the user's saved resources
func ListHandler(resourceRepo *resources.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		list, err := resourceRepo.List(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list resources", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Resources: list})
	}
}

// creates a handler that fetches one saved resource
func GetHandler(resourceRepo *resources.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		resourceID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		resource, err := resourceRepo.Get(c.Request.Context(), resourceID, userID)
		if err != nil {
			errors.NotFound(c, "resource")
			return
		}

		c.JSON(http.StatusOK, ResourceResponse{Resource: resource})
	}
}
