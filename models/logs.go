package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActionLog is the global append-only audit trail (logins, submissions,
// user creation). Rows are never updated or deleted.
type ActionLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    *uint          `gorm:"index;column:usuario_id" json:"usuario_id"`
	Action    string         `gorm:"size:50;not null;column:accion" json:"accion"`
	Outcome   string         `gorm:"size:20;not null;column:resultado" json:"resultado"`
	Details   string         `gorm:"type:text;column:detalles" json:"detalles"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload,omitempty"`
	IPAddress string         `gorm:"size:50" json:"ip_address"`
	UserAgent string         `gorm:"size:255" json:"user_agent"`
	CreatedAt time.Time      `json:"created_at"`
}

func (ActionLog) TableName() string { return "logs" }

// NotificationLog records each view/process action on a notification. It is
// the only per-notification history and is not exposed to supervisors.
type NotificationLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NotificationID uint      `gorm:"not null;index;column:notificacion_id" json:"notificacion_id"`
	UserID         uint      `gorm:"not null;column:usuario_id" json:"usuario_id"`
	Action         string    `gorm:"size:50;not null;column:accion" json:"accion"`
	Details        string    `gorm:"type:text;column:detalles" json:"detalles"`
	CreatedAt      time.Time `json:"created_at"`
}

func (NotificationLog) TableName() string { return "notificaciones_logs" }
