package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/utils"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyProcessed     = errors.New("notification was already processed")
)

// NotificationDetail bundles a notification with a snapshot of the form it
// refers to, so the operations chief reviews everything in one request.
type NotificationDetail struct {
	Notification models.Notification `json:"notificacion"`
	Form         any                 `json:"formulario"`
}

type NotificationService struct {
	repos *repositories.Repos
}

func NewNotificationService(repos *repositories.Repos) *NotificationService {
	return &NotificationService{repos: repos}
}

func (s *NotificationService) List(managerID uint, query dto.ListNotificationsQuery) ([]models.Notification, int64, error) {
	return s.repos.Notification.ListNotifications(managerID, repositories.NotificationListParams{
		Page:   query.Page,
		Limit:  query.Limit,
		Status: query.Status,
		Read:   query.Read,
	})
}

func (s *NotificationService) UnreadCount(managerID uint) (int64, error) {
	return s.repos.Notification.UnreadCount(managerID)
}

func (s *NotificationService) MarkRead(id, managerID uint) (models.Notification, error) {
	notification, err := s.repos.Notification.GetByID(id, managerID)
	if err != nil {
		return models.Notification{}, ErrNotificationNotFound
	}
	if notification.Read {
		return notification, nil
	}
	notification.Read = true
	if err := s.repos.Notification.SaveNotification(&notification); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(managerID uint) (int64, error) {
	return s.repos.Notification.MarkAllRead(managerID)
}

// Process applies the single pendiente -> procesada|rechazada transition.
// A terminal notification is never re-processed.
func (s *NotificationService) Process(id, managerID uint, input dto.ProcessNotificationDTO) (models.Notification, error) {
	notification, err := s.repos.Notification.GetByID(id, managerID)
	if err != nil {
		return models.Notification{}, ErrNotificationNotFound
	}
	if notification.Status.Terminal() {
		return models.Notification{}, ErrAlreadyProcessed
	}

	now := time.Now()
	notification.Status = models.NotificationStatus(input.Status)
	notification.ProcessingComment = input.Comment
	notification.ProcessedAt = &now
	notification.Read = true

	if err := s.repos.Notification.SaveNotification(&notification); err != nil {
		return models.Notification{}, err
	}

	details := fmt.Sprintf("Estado: %s", input.Status)
	if input.Comment != "" {
		details = fmt.Sprintf("%s. Observaciones: %s", details, input.Comment)
	}
	utils.LogNotificationAction(notification.ID, managerID, "procesamiento", details, s.repos.Log)

	return notification, nil
}

// Detail loads the notification together with the referenced form. Incident
// forms come with their attachments preloaded. Opening the detail counts as a
// visualization in the notification log.
func (s *NotificationService) Detail(id, managerID uint) (NotificationDetail, error) {
	notification, err := s.repos.Notification.GetByID(id, managerID)
	if err != nil {
		return NotificationDetail{}, ErrNotificationNotFound
	}

	detail := NotificationDetail{Notification: notification}
	switch notification.FormKind {
	case models.FormKindOpening:
		form, err := s.repos.Form.GetOpeningFormByID(notification.FormID)
		if err == nil {
			detail.Form = form
		}
	case models.FormKindClosing:
		form, err := s.repos.Form.GetClosingFormByID(notification.FormID)
		if err == nil {
			detail.Form = form
		}
	case models.FormKindIncident:
		form, err := s.repos.Form.GetIncidentFormByID(notification.FormID)
		if err == nil {
			detail.Form = form
		}
	}

	utils.LogNotificationAction(notification.ID, managerID, "visualizacion", "Consulta de detalle", s.repos.Log)

	return detail, nil
}

// Files returns the attachments of the incident a notification wraps.
// Notifications over apertura or cierre forms have none.
func (s *NotificationService) Files(id, managerID uint) ([]models.IncidentFile, error) {
	notification, err := s.repos.Notification.GetByID(id, managerID)
	if err != nil {
		return nil, ErrNotificationNotFound
	}
	if notification.FormKind != models.FormKindIncident {
		return []models.IncidentFile{}, nil
	}
	return s.repos.File.ListByIncident(notification.FormID)
}

func (s *NotificationService) Delete(id, managerID uint) error {
	affected, err := s.repos.Notification.DeleteByID(id, managerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) Stats(managerID uint) (repositories.NotificationStats, error) {
	return s.repos.Notification.Stats(managerID)
}
