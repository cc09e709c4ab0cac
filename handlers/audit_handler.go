package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/services"
)

type AuditHandler struct {
	audit *services.AuditService
}

func NewAuditHandler(audit *services.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// GET /api/logs (operations chief only)
func (h *AuditHandler) ListLogs(c *gin.Context) {
	var params repositories.LogQueryParams

	if raw := c.Query("usuario_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "usuario_id inválido"})
			return
		}
		uid := uint(id)
		params.UserID = &uid
	}
	if action := c.Query("accion"); action != "" {
		params.Action = &action
	}
	if raw := c.Query("desde"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "desde inválido, formato AAAA-MM-DD"})
			return
		}
		params.StartTime = &t
	}
	if raw := c.Query("hasta"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "hasta inválido, formato AAAA-MM-DD"})
			return
		}
		end := t.Add(24 * time.Hour)
		params.EndTime = &end
	}

	params.Limit = 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 1000 {
			params.Limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			params.Offset = n
		}
	}

	logs, err := h.audit.ListLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al consultar el registro de actividad"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}
