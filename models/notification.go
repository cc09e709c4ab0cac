package models

import "time"

type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pendiente"
	NotificationProcessed NotificationStatus = "procesada"
	NotificationRejected  NotificationStatus = "rechazada"
)

// Terminal reports whether the status admits no further process transition.
func (s NotificationStatus) Terminal() bool {
	return s == NotificationProcessed || s == NotificationRejected
}

// Notification wraps one submitted form for the operations chief's review.
// Exactly one is created per form; pending -> procesada|rechazada is the only
// status transition and it happens at most once.
type Notification struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	ManagerID         uint               `gorm:"not null;index;column:jefe_operaciones_id" json:"jefe_operaciones_id"`
	SupervisorID      uint               `gorm:"not null;index;column:jefe_trafico_id" json:"jefe_trafico_id"`
	FormKind          FormKind           `gorm:"size:20;not null;column:tipo_formulario" json:"tipo_formulario"`
	FormID            uint               `gorm:"not null;column:formulario_id" json:"formulario_id"`
	Title             string             `gorm:"size:255;not null;column:titulo" json:"titulo"`
	Message           string             `gorm:"type:text;column:mensaje" json:"mensaje"`
	Status            NotificationStatus `gorm:"size:20;not null;default:'pendiente';column:estado" json:"estado"`
	Read              bool               `gorm:"not null;default:false;column:leida" json:"leida"`
	ProcessingComment string             `gorm:"type:text;column:observaciones_procesamiento" json:"observaciones_procesamiento"`
	CreatedAt         time.Time          `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	ProcessedAt       *time.Time         `gorm:"column:fecha_procesamiento" json:"fecha_procesamiento"`

	Manager    User `gorm:"foreignKey:ManagerID" json:"-"`
	Supervisor User `gorm:"foreignKey:SupervisorID" json:"supervisor"`
}

func (Notification) TableName() string { return "notificaciones" }
