package repositories

import (
	"time"

	"github.com/solucioning/fleetforms/db"
	"github.com/solucioning/fleetforms/models"
)

type LogQueryParams struct {
	UserID    *uint
	Action    *string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Offset    int
}

type LogRepo interface {
	CreateActionLog(entry *models.ActionLog) error
	CreateNotificationLog(entry *models.NotificationLog) error
	ListActionLogs(params LogQueryParams) ([]models.ActionLog, error)
}

type DBLogRepo struct{}

func (r *DBLogRepo) CreateActionLog(entry *models.ActionLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBLogRepo) CreateNotificationLog(entry *models.NotificationLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBLogRepo) ListActionLogs(params LogQueryParams) ([]models.ActionLog, error) {
	var logs []models.ActionLog
	query := db.DB.Model(&models.ActionLog{})

	if params.UserID != nil {
		query = query.Where("usuario_id = ?", *params.UserID)
	}
	if params.Action != nil {
		query = query.Where("accion = ?", *params.Action)
	}
	if params.StartTime != nil {
		query = query.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("created_at <= ?", *params.EndTime)
	}

	query = query.Order("created_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}
