package services

import (
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
)

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) ListLogs(params repositories.LogQueryParams) ([]models.ActionLog, error) {
	return s.repos.Log.ListActionLogs(params)
}
