package repositories

import (
	"github.com/solucioning/fleetforms/db"
	"github.com/solucioning/fleetforms/models"
)

type NotificationListParams struct {
	Page   int
	Limit  int
	Status string
	Read   string // "", "true" or "false"
}

type NotificationStats struct {
	Total          int64       `json:"total"`
	Unread         int64       `json:"no_leidas"`
	Pending        int64       `json:"pendientes"`
	Processed      int64       `json:"aprobados"`
	Rejected       int64       `json:"rechazados"`
	ByKind         []KindCount `json:"por_tipo"`
	TopSupervisors []KindCount `json:"por_jefe_trafico"`
}

type NotificationRepo interface {
	CreateNotification(n *models.Notification) error
	SaveNotification(n *models.Notification) error
	ListNotifications(managerID uint, params NotificationListParams) ([]models.Notification, int64, error)
	GetByID(id, managerID uint) (models.Notification, error)
	UnreadCount(managerID uint) (int64, error)
	MarkAllRead(managerID uint) (int64, error)
	DeleteByID(id, managerID uint) (int64, error)
	ByKindForForms(kind models.FormKind, formIDs []uint) ([]models.Notification, error)
	Stats(managerID uint) (NotificationStats, error)
}

type DBNotificationRepo struct{}

func (r *DBNotificationRepo) CreateNotification(n *models.Notification) error {
	return db.DB.Create(n).Error
}

func (r *DBNotificationRepo) SaveNotification(n *models.Notification) error {
	return db.DB.Save(n).Error
}

func (r *DBNotificationRepo) ListNotifications(managerID uint, params NotificationListParams) ([]models.Notification, int64, error) {
	query := db.DB.Model(&models.Notification{}).Where("jefe_operaciones_id = ?", managerID)

	if params.Status != "" {
		query = query.Where("estado = ?", params.Status)
	}
	if params.Read != "" {
		query = query.Where("leida = ?", params.Read == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}

	var notifications []models.Notification
	err := query.Preload("Supervisor").
		Order("fecha_creacion desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *DBNotificationRepo) GetByID(id, managerID uint) (models.Notification, error) {
	var n models.Notification
	err := db.DB.Preload("Supervisor").
		Where("id = ? AND jefe_operaciones_id = ?", id, managerID).
		First(&n).Error
	return n, err
}

func (r *DBNotificationRepo) UnreadCount(managerID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Notification{}).
		Where("jefe_operaciones_id = ? AND leida = false", managerID).
		Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) MarkAllRead(managerID uint) (int64, error) {
	result := db.DB.Model(&models.Notification{}).
		Where("jefe_operaciones_id = ? AND leida = false", managerID).
		Update("leida", true)
	return result.RowsAffected, result.Error
}

func (r *DBNotificationRepo) DeleteByID(id, managerID uint) (int64, error) {
	result := db.DB.
		Where("id = ? AND jefe_operaciones_id = ?", id, managerID).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

// ByKindForForms looks notifications up by the forms they wrap. Keyed on the
// form IDs rather than creation dates: a notification may land on a later
// calendar day than its form.
func (r *DBNotificationRepo) ByKindForForms(kind models.FormKind, formIDs []uint) ([]models.Notification, error) {
	if len(formIDs) == 0 {
		return nil, nil
	}
	var notifications []models.Notification
	err := db.DB.
		Where("tipo_formulario = ? AND formulario_id IN ?", kind, formIDs).
		Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) Stats(managerID uint) (NotificationStats, error) {
	var stats NotificationStats

	if err := db.DB.Model(&models.Notification{}).
		Where("jefe_operaciones_id = ?", managerID).
		Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	counts := []struct {
		dest  *int64
		where string
		arg   any
	}{
		{&stats.Unread, "leida = ?", false},
		{&stats.Pending, "estado = ?", models.NotificationPending},
		{&stats.Processed, "estado = ?", models.NotificationProcessed},
		{&stats.Rejected, "estado = ?", models.NotificationRejected},
	}
	for _, c := range counts {
		err := db.DB.Model(&models.Notification{}).
			Where("jefe_operaciones_id = ?", managerID).
			Where(c.where, c.arg).
			Count(c.dest).Error
		if err != nil {
			return stats, err
		}
	}

	err := db.DB.Model(&models.Notification{}).
		Select("tipo_formulario as key, COUNT(*) as count").
		Where("jefe_operaciones_id = ?", managerID).
		Group("tipo_formulario").
		Order("count desc").
		Scan(&stats.ByKind).Error
	if err != nil {
		return stats, err
	}

	err = db.DB.Model(&models.Notification{}).
		Select("users.username as key, COUNT(*) as count").
		Joins("JOIN users ON users.id = notificaciones.jefe_trafico_id").
		Where("jefe_operaciones_id = ?", managerID).
		Group("users.username").
		Order("count desc").
		Limit(10).
		Scan(&stats.TopSupervisors).Error
	return stats, err
}
