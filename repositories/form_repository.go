package repositories

import (
	"time"

	"github.com/solucioning/fleetforms/db"
	"github.com/solucioning/fleetforms/models"
	"gorm.io/gorm"
)

type FormListParams struct {
	Page  int
	Limit int
	Date  string // YYYY-MM-DD, matches DATE(created_at)
	Type  string // incident type filter, incidents only
}

type FormStats struct {
	OpeningTotal    int64       `json:"apertura_total"`
	ClosingTotal    int64       `json:"cierre_total"`
	IncidentTotal   int64       `json:"incidencias_total"`
	IncidentsByType []KindCount `json:"incidencias_por_tipo"`
}

type KindCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type FormRepo interface {
	CreateOpeningForm(form *models.OpeningForm) error
	CreateClosingForm(form *models.ClosingForm) error
	CreateIncidentForm(form *models.IncidentForm) error

	GetOpeningFormByID(id uint) (models.OpeningForm, error)
	GetClosingFormByID(id uint) (models.ClosingForm, error)
	GetIncidentFormByID(id uint) (models.IncidentForm, error)

	ListOpeningForms(params FormListParams) ([]models.OpeningForm, int64, error)
	ListClosingForms(params FormListParams) ([]models.ClosingForm, int64, error)
	ListIncidentForms(params FormListParams) ([]models.IncidentForm, int64, error)
	ListIncidentTypes() ([]string, error)

	OpeningFormsBetween(from, to time.Time) ([]models.OpeningForm, error)
	ClosingFormsBetween(from, to time.Time) ([]models.ClosingForm, error)
	IncidentFormsBetween(from, to time.Time) ([]models.IncidentForm, error)

	Stats(from, to string) (FormStats, error)
}

type DBFormRepo struct{}

func (r *DBFormRepo) CreateOpeningForm(form *models.OpeningForm) error {
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) CreateClosingForm(form *models.ClosingForm) error {
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) CreateIncidentForm(form *models.IncidentForm) error {
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) GetOpeningFormByID(id uint) (models.OpeningForm, error) {
	var form models.OpeningForm
	err := db.DB.Preload("User").First(&form, id).Error
	return form, err
}

func (r *DBFormRepo) GetClosingFormByID(id uint) (models.ClosingForm, error) {
	var form models.ClosingForm
	err := db.DB.Preload("User").First(&form, id).Error
	return form, err
}

func (r *DBFormRepo) GetIncidentFormByID(id uint) (models.IncidentForm, error) {
	var form models.IncidentForm
	err := db.DB.Preload("User").Preload("Files").First(&form, id).Error
	return form, err
}

func paginate(query *gorm.DB, params FormListParams) *gorm.DB {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}
	return query.Order("created_at desc").Limit(limit).Offset((page - 1) * limit)
}

func (r *DBFormRepo) ListOpeningForms(params FormListParams) ([]models.OpeningForm, int64, error) {
	query := db.DB.Model(&models.OpeningForm{})
	if params.Date != "" {
		query = query.Where("DATE(created_at) = ?", params.Date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []models.OpeningForm
	err := paginate(query.Preload("User"), params).Find(&forms).Error
	return forms, total, err
}

func (r *DBFormRepo) ListClosingForms(params FormListParams) ([]models.ClosingForm, int64, error) {
	query := db.DB.Model(&models.ClosingForm{})
	if params.Date != "" {
		query = query.Where("DATE(created_at) = ?", params.Date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []models.ClosingForm
	err := paginate(query.Preload("User"), params).Find(&forms).Error
	return forms, total, err
}

func (r *DBFormRepo) ListIncidentForms(params FormListParams) ([]models.IncidentForm, int64, error) {
	query := db.DB.Model(&models.IncidentForm{})
	if params.Date != "" {
		query = query.Where("DATE(created_at) = ?", params.Date)
	}
	if params.Type != "" {
		query = query.Where("tipo_incidencia = ?", params.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []models.IncidentForm
	err := paginate(query.Preload("User"), params).Find(&forms).Error
	return forms, total, err
}

func (r *DBFormRepo) ListIncidentTypes() ([]string, error) {
	var types []string
	err := db.DB.Model(&models.IncidentForm{}).
		Distinct("tipo_incidencia").
		Where("tipo_incidencia IS NOT NULL AND tipo_incidencia <> ''").
		Order("tipo_incidencia").
		Pluck("tipo_incidencia", &types).Error
	return types, err
}

func (r *DBFormRepo) OpeningFormsBetween(from, to time.Time) ([]models.OpeningForm, error) {
	var forms []models.OpeningForm
	err := db.DB.Preload("User").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at asc").
		Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ClosingFormsBetween(from, to time.Time) ([]models.ClosingForm, error) {
	var forms []models.ClosingForm
	err := db.DB.Preload("User").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at asc").
		Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) IncidentFormsBetween(from, to time.Time) ([]models.IncidentForm, error) {
	var forms []models.IncidentForm
	err := db.DB.Preload("User").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at asc").
		Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) Stats(from, to string) (FormStats, error) {
	var stats FormStats

	ranged := func(model any) *gorm.DB {
		query := db.DB.Model(model)
		if from != "" && to != "" {
			query = query.Where("DATE(created_at) BETWEEN ? AND ?", from, to)
		}
		return query
	}

	if err := ranged(&models.OpeningForm{}).Count(&stats.OpeningTotal).Error; err != nil {
		return stats, err
	}
	if err := ranged(&models.ClosingForm{}).Count(&stats.ClosingTotal).Error; err != nil {
		return stats, err
	}
	if err := ranged(&models.IncidentForm{}).Count(&stats.IncidentTotal).Error; err != nil {
		return stats, err
	}

	err := ranged(&models.IncidentForm{}).
		Select("tipo_incidencia as key, COUNT(*) as count").
		Group("tipo_incidencia").
		Order("count desc").
		Scan(&stats.IncidentsByType).Error
	return stats, err
}
