package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/database/repository"
	"rentora/models"
	"rentora/services/booking"
	"rentora/services/pricing"
)

// respondEngineError maps the engine's typed errors onto HTTP statuses:
// malformed input 400, availability conflicts 409, policy violations 422,
// unknown listings 404. Anything else is a 500.
func respondEngineError(c *gin.Context, err error) {
	var vErr *pricing.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "validation_error",
			"field": vErr.Field, "message": vErr.Message,
		})
		return
	}

	var cErr *pricing.ConflictError
	if errors.As(err, &cErr) {
		conflicts := cErr.Conflicts
		if conflicts == nil {
			conflicts = []models.Conflict{}
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":     "availability_conflict",
			"message":   "selected dates are unavailable - choose another range",
			"conflicts": conflicts,
		})
		return
	}

	var pErr *booking.PolicyViolationError
	if errors.As(err, &pErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "policy_violation",
			"reason": pErr.Code, "message": pErr.Message,
		})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "listing or booking not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": err.Error()})
}
