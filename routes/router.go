package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/handlers"
	"github.com/solucioning/fleetforms/middleware"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/services"
	"github.com/solucioning/fleetforms/storage"
)

func RegisterRoutes(r *gin.Engine, store storage.Store) {
	repos := repositories.New()
	svc := services.New(repos, store)
	h := handlers.New(svc, repos)

	api := r.Group("/api")

	api.GET("/health", h.Health.Check)
	api.POST("/auth/login", h.Auth.Login)

	// Token rides in the query string here; the handler validates it itself.
	api.GET("/notificaciones/ws", h.WS.UnreadCount)

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		authRoutes := auth.Group("/auth")
		{
			authRoutes.GET("/verify", h.Auth.Verify)
			authRoutes.GET("/profile", h.Auth.Profile)
			authRoutes.PUT("/change-password", h.Auth.ChangePassword)
			authRoutes.POST("/create-user", middleware.RequireRole(models.RoleOperationsChief), h.Auth.CreateUser)
		}

		forms := auth.Group("/formularios")
		{
			supervisor := middleware.RequireRole(models.RoleTrafficChief)
			manager := middleware.RequireRole(models.RoleOperationsChief)

			forms.POST("/apertura", supervisor, h.Form.CreateOpening)
			forms.POST("/cierre", supervisor, h.Form.CreateClosing)
			forms.POST("/incidencias", supervisor, h.Form.CreateIncident)

			forms.GET("/apertura", h.Form.ListOpening)
			forms.GET("/cierre", h.Form.ListClosing)
			forms.GET("/incidencias", h.Form.ListIncidents)
			forms.GET("/incidencias/tipos", h.Form.ListIncidentTypes)

			forms.GET("/stats", manager, h.Form.Stats)
			forms.GET("/informes/export", manager, h.Form.Export)
		}

		files := auth.Group("/files")
		{
			files.POST("/upload/:incidenciaId", middleware.RequireRole(models.RoleTrafficChief), h.File.Upload)
			files.GET("/incidencia/:incidenciaId", h.File.ListForIncident)
			files.GET("/download/:archivoId", h.File.Download)
			files.DELETE("/:archivoId", h.File.Delete)
		}

		notifications := auth.Group("/notificaciones")
		notifications.Use(middleware.RequireRole(models.RoleOperationsChief))
		{
			notifications.GET("", h.Notification.List)
			notifications.GET("/unread-count", h.Notification.UnreadCount)
			notifications.GET("/stats/overview", h.Notification.Stats)
			notifications.GET("/:id", h.Notification.Detail)
			notifications.GET("/:id/files", h.Notification.Files)
			notifications.PUT("/read-all", h.Notification.MarkAllRead)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
			notifications.PUT("/:id/process", h.Notification.Process)
			notifications.DELETE("/:id", h.Notification.Delete)
		}

		logs := auth.Group("/logs")
		logs.Use(middleware.RequireRole(models.RoleOperationsChief))
		{
			logs.GET("", h.Audit.ListLogs)
		}
	}
}
