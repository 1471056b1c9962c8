package handlers

import (
	"net/http"

	"shujia/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process liveness and Redis reachability.
func HealthHandler(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if err := utils.GetSessionCacheClient().Ping(c.Request.Context()).Err(); err != nil {
		status["status"] = "degraded"
		status["redis"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	status["redis"] = "ok"
	c.JSON(http.StatusOK, status)
}
