package services

import (
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/storage"
)

type Services struct {
	User         *UserService
	Form         *FormService
	File         *FileService
	Notification *NotificationService
	Report       *ReportService
	Audit        *AuditService
}

func New(repos *repositories.Repos, store storage.Store) *Services {
	return &Services{
		User:         NewUserService(repos),
		Form:         NewFormService(repos),
		File:         NewFileService(repos, store),
		Notification: NewNotificationService(repos),
		Report:       NewReportService(repos),
		Audit:        NewAuditService(repos),
	}
}
