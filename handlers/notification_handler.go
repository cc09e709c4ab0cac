package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/services"
	"github.com/solucioning/fleetforms/utils"
)

// All notification routes are operations-chief only; the role gate lives in
// the router, handlers just scope queries by the caller's id.
type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// GET /api/notificaciones
func (h *NotificationHandler) List(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	var query dto.ListNotificationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Parámetros de consulta inválidos"})
		return
	}

	notifications, total, err := h.notifications.List(claims.UserID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al listar notificaciones"})
		return
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       notifications,
		"pagination": response.Pagination{Page: query.Page, Limit: limit, Total: total, Pages: pages},
	})
}

// GET /api/notificaciones/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	count, err := h.notifications.UnreadCount(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al contar notificaciones"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GET /api/notificaciones/:id
func (h *NotificationHandler) Detail(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	detail, err := h.notifications.Detail(id, claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notificación no encontrada"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/notificaciones/:id/files
func (h *NotificationHandler) Files(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	files, err := h.notifications.Files(id, claims.UserID)
	switch {
	case errors.Is(err, services.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notificación no encontrada"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al listar archivos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"archivos": files})
}

// PUT /api/notificaciones/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	notification, err := h.notifications.MarkRead(id, claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notificación no encontrada"})
		return
	}
	c.JSON(http.StatusOK, notification)
}

// PUT /api/notificaciones/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	updated, err := h.notifications.MarkAllRead(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al marcar notificaciones"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// PUT /api/notificaciones/:id/process
func (h *NotificationHandler) Process(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	var input dto.ProcessNotificationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "estado debe ser procesada o rechazada"})
		return
	}

	notification, err := h.notifications.Process(id, claims.UserID, input)
	switch {
	case errors.Is(err, services.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notificación no encontrada"})
		return
	case errors.Is(err, services.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "La notificación ya fue procesada"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al procesar la notificación"})
		return
	}
	c.JSON(http.StatusOK, notification)
}

// DELETE /api/notificaciones/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador inválido"})
		return
	}

	if err := h.notifications.Delete(id, claims.UserID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Notificación no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al eliminar la notificación"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Notificación eliminada"})
}

// GET /api/notificaciones/stats/overview
func (h *NotificationHandler) Stats(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	stats, err := h.notifications.Stats(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al calcular estadísticas"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
