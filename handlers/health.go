package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/utils"
)

// HealthHandler reports the last dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() && !status.CheckedAt.IsZero() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
