package repositories

import (
	"errors"

	"github.com/solucioning/fleetforms/db"
	"github.com/solucioning/fleetforms/models"
	"gorm.io/gorm"
)

// ErrAttachmentLimit is returned by CreateWithCap when the per-incident cap
// would be exceeded.
var ErrAttachmentLimit = errors.New("attachment limit reached for incident")

type FileRepo interface {
	// CreateWithCap inserts the metadata row only if the incident currently
	// holds fewer than max attachments. Count and insert run in one
	// transaction so concurrent uploads cannot race past the cap.
	CreateWithCap(file *models.IncidentFile, max int) error
	ListByIncident(incidentID uint) ([]models.IncidentFile, error)
	GetByID(id uint) (models.IncidentFile, error)
	ExistsByNameAndSize(incidentID uint, originalName string, size int64) (bool, error)
	CountByIncident(incidentID uint) (int64, error)
	DeleteByID(id uint) error
}

type DBFileRepo struct{}

func (r *DBFileRepo) CreateWithCap(file *models.IncidentFile, max int) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.IncidentFile{}).
			Where("incidencia_id = ?", file.IncidentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(max) {
			return ErrAttachmentLimit
		}
		return tx.Create(file).Error
	})
}

func (r *DBFileRepo) ListByIncident(incidentID uint) ([]models.IncidentFile, error) {
	var files []models.IncidentFile
	err := db.DB.Preload("Uploader").
		Where("incidencia_id = ?", incidentID).
		Order("fecha_subida desc").
		Find(&files).Error
	return files, err
}

func (r *DBFileRepo) GetByID(id uint) (models.IncidentFile, error) {
	var file models.IncidentFile
	err := db.DB.Preload("Incident").First(&file, id).Error
	return file, err
}

func (r *DBFileRepo) ExistsByNameAndSize(incidentID uint, originalName string, size int64) (bool, error) {
	var count int64
	err := db.DB.Model(&models.IncidentFile{}).
		Where("incidencia_id = ? AND nombre_original = ? AND size = ?", incidentID, originalName, size).
		Count(&count).Error
	return count > 0, err
}

func (r *DBFileRepo) CountByIncident(incidentID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.IncidentFile{}).
		Where("incidencia_id = ?", incidentID).
		Count(&count).Error
	return count, err
}

func (r *DBFileRepo) DeleteByID(id uint) error {
	return db.DB.Delete(&models.IncidentFile{}, id).Error
}
