package handlers

import (
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/services"
)

type Handlers struct {
	Auth         *AuthHandler
	Form         *FormHandler
	File         *FileHandler
	Notification *NotificationHandler
	Audit        *AuditHandler
	Health       *HealthHandler
	WS           *WSHandler
}

func New(svc *services.Services, repos *repositories.Repos) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.User, repos.Log),
		Form:         NewFormHandler(svc.Form, svc.File, svc.Report, repos.Log),
		File:         NewFileHandler(svc.File, repos.Log),
		Notification: NewNotificationHandler(svc.Notification),
		Audit:        NewAuditHandler(svc.Audit),
		Health:       NewHealthHandler(),
		WS:           NewWSHandler(svc.Notification),
	}
}
