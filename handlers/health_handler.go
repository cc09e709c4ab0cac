package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/config"
)

const version = "1.0.0"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": config.RunMode,
		"version":     version,
	})
}
