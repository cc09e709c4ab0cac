package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/solucioning/fleetforms/config"
	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
)

var ErrMissingEmployees = errors.New("empleados_incidencia must not be empty")

type FormService struct {
	repos *repositories.Repos
}

func NewFormService(repos *repositories.Repos) *FormService {
	return &FormService{repos: repos}
}

// resolveRecipient picks the operations chief that receives notifications:
// the configured NOTIFY_RECIPIENT username if set, otherwise the lowest-id
// manager account.
func (s *FormService) resolveRecipient() (models.User, error) {
	if config.NotifyRecipient != "" {
		return s.repos.User.GetManagerByUsername(config.NotifyRecipient)
	}
	return s.repos.User.FirstManager()
}

// notifyManager creates the approval notification for a submitted form.
// Best-effort: the form is already persisted and a missing manager account
// must not undo a supervisor's submission.
func (s *FormService) notifyManager(kind models.FormKind, formID, supervisorID uint, title, message string) {
	manager, err := s.resolveRecipient()
	if err != nil {
		log.Printf("No operations chief account found, skipping notification for %s %d: %v", kind, formID, err)
		return
	}

	n := &models.Notification{
		ManagerID:    manager.ID,
		SupervisorID: supervisorID,
		FormKind:     kind,
		FormID:       formID,
		Title:        title,
		Message:      message,
		Status:       models.NotificationPending,
	}
	if err := s.repos.Notification.CreateNotification(n); err != nil {
		log.Printf("Failed to create notification for %s %d: %v", kind, formID, err)
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func (s *FormService) CreateOpeningForm(userID uint, username string, input dto.CreateOpeningFormDTO) (*models.OpeningForm, error) {
	form := &models.OpeningForm{
		UserID:               userID,
		NonOperativeStaff:    orEmpty(input.NonOperativeStaff),
		StaffOnLeave:         orEmpty(input.StaffOnLeave),
		NonOperativeVehicles: orEmpty(input.NonOperativeVehicles),
		NeedReplacement:      orEmpty(input.NeedReplacement),
		NotConnected:         orEmpty(input.NotConnected),
		DeadPhoneBattery:     orEmpty(input.DeadPhoneBattery),
		DeadVehicleBattery:   orEmpty(input.DeadVehicleBattery),
		Observations:         input.Observations,
	}

	if err := s.repos.Form.CreateOpeningForm(form); err != nil {
		return nil, err
	}

	s.notifyManager(models.FormKindOpening, form.ID, userID,
		"Nuevo formulario de apertura",
		fmt.Sprintf("El jefe de tráfico %s ha completado el formulario de apertura del día.", username))
	return form, nil
}

func (s *FormService) CreateClosingForm(userID uint, username string, input dto.CreateClosingFormDTO) (*models.ClosingForm, error) {
	form := &models.ClosingForm{
		UserID:            userID,
		DataAnalysis:      input.DataAnalysis,
		ShiftProblems:     input.ShiftProblems,
		ProposedSolutions: input.ProposedSolutions,
	}

	if err := s.repos.Form.CreateClosingForm(form); err != nil {
		return nil, err
	}

	s.notifyManager(models.FormKindClosing, form.ID, userID,
		"Nuevo formulario de cierre",
		fmt.Sprintf("El jefe de tráfico %s ha completado el formulario de cierre del día.", username))
	return form, nil
}

func (s *FormService) CreateIncidentForm(userID uint, username string, input dto.CreateIncidentFormDTO) (*models.IncidentForm, error) {
	if len(input.Employees) == 0 {
		return nil, ErrMissingEmployees
	}

	form := &models.IncidentForm{
		UserID:       userID,
		Employees:    input.Employees,
		IncidentType: input.IncidentType,
		Observations: input.Observations,
	}

	if err := s.repos.Form.CreateIncidentForm(form); err != nil {
		return nil, err
	}

	s.notifyManager(models.FormKindIncident, form.ID, userID,
		"Nueva incidencia reportada",
		fmt.Sprintf("El jefe de tráfico %s ha reportado una incidencia: %s", username, input.IncidentType))
	return form, nil
}

func (s *FormService) ListOpeningForms(params repositories.FormListParams) ([]models.OpeningForm, int64, error) {
	return s.repos.Form.ListOpeningForms(params)
}

func (s *FormService) ListClosingForms(params repositories.FormListParams) ([]models.ClosingForm, int64, error) {
	return s.repos.Form.ListClosingForms(params)
}

func (s *FormService) ListIncidentForms(params repositories.FormListParams) ([]models.IncidentForm, int64, error) {
	return s.repos.Form.ListIncidentForms(params)
}

func (s *FormService) ListIncidentTypes() ([]string, error) {
	return s.repos.Form.ListIncidentTypes()
}

func (s *FormService) Stats(from, to string) (repositories.FormStats, error) {
	return s.repos.Form.Stats(from, to)
}
