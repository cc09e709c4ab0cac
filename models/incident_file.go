package models

import "time"

// IncidentFile is the metadata row for one attachment. The object itself
// lives in the storage backend under StoragePath.
type IncidentFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IncidentID   uint      `gorm:"not null;index;column:incidencia_id" json:"incidencia_id"`
	OriginalName string    `gorm:"size:255;not null;column:nombre_original" json:"nombre_original"`
	StoredName   string    `gorm:"size:255;not null;column:nombre_archivo" json:"nombre_archivo"`
	MimeType     string    `gorm:"size:100;column:tipo_mime" json:"tipo_mime"`
	Size         int64     `gorm:"not null" json:"size"`
	StoragePath  string    `gorm:"size:512;not null;column:ruta_archivo" json:"ruta_archivo"`
	UploadedBy   uint      `gorm:"not null;index" json:"uploaded_by"`
	CreatedAt    time.Time `gorm:"column:fecha_subida" json:"fecha_subida"`

	Incident IncidentForm `gorm:"foreignKey:IncidentID;constraint:OnDelete:CASCADE" json:"-"`
	Uploader User         `gorm:"foreignKey:UploadedBy" json:"uploader"`
}

func (IncidentFile) TableName() string { return "incidencias_archivos" }
