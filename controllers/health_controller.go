package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe used by the deployment's health checks.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "viveo-api"})
}
