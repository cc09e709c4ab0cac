package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/solucioning/fleetforms/config"
	"github.com/solucioning/fleetforms/middleware"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/services"
	"github.com/solucioning/fleetforms/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return middleware.OriginAllowed(r.Header.Get("Origin"))
	},
}

type WSHandler struct {
	notifications *services.NotificationService
}

func NewWSHandler(notifications *services.NotificationService) *WSHandler {
	return &WSHandler{notifications: notifications}
}

// GET /api/notificaciones/ws (operations chief only)
// Pushes {"count": n} on connect and then on every poll tick until the
// client hangs up. Browsers cannot set the Authorization header on a
// WebSocket, so the token also rides in the "token" query parameter.
func (h *WSHandler) UnreadCount(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
			return
		}
		claims, err = middleware.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
			return
		}
	}
	if claims.Role != models.RoleOperationsChief {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Acceso restringido al jefe de operaciones"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "No se pudo abrir el websocket"})
		return
	}
	defer conn.Close()

	// Drain client frames so closes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := time.Duration(config.WsPollSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := h.push(conn, claims.UserID); err != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := h.push(conn, claims.UserID); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) push(conn *websocket.Conn, managerID uint) error {
	count, err := h.notifications.UnreadCount(managerID)
	if err != nil {
		return err
	}
	return conn.WriteJSON(gin.H{"count": count})
}
