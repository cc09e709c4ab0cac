package models

import (
	"time"

	"github.com/lib/pq"
)

type FormKind string

const (
	FormKindOpening  FormKind = "apertura"
	FormKindClosing  FormKind = "cierre"
	FormKindIncident FormKind = "incidencia"
)

// OpeningForm is the daily shift-opening checklist. Forms are immutable after
// creation; their approval state lives on the Notification row.
type OpeningForm struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	UserID               uint           `gorm:"not null;index" json:"user_id"`
	NonOperativeStaff    pq.StringArray `gorm:"type:text[];column:empleados_no_operativos" json:"empleados_no_operativos"`
	StaffOnLeave         pq.StringArray `gorm:"type:text[];column:empleados_baja" json:"empleados_baja"`
	NonOperativeVehicles pq.StringArray `gorm:"type:text[];column:vehiculos_no_operativos" json:"vehiculos_no_operativos"`
	NeedReplacement      pq.StringArray `gorm:"type:text[];column:necesitan_sustitucion" json:"necesitan_sustitucion"`
	NotConnected         pq.StringArray `gorm:"type:text[];column:no_conectados_plataforma" json:"no_conectados_plataforma"`
	DeadPhoneBattery     pq.StringArray `gorm:"type:text[];column:sin_bateria_movil" json:"sin_bateria_movil"`
	DeadVehicleBattery   pq.StringArray `gorm:"type:text[];column:sin_bateria_vehiculo" json:"sin_bateria_vehiculo"`
	Observations         string         `gorm:"type:text;column:observaciones" json:"observaciones"`
	CreatedAt            time.Time      `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (OpeningForm) TableName() string { return "formularios_apertura" }

type ClosingForm struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	DataAnalysis      string    `gorm:"type:text;not null;column:analisis_datos" json:"analisis_datos"`
	ShiftProblems     string    `gorm:"type:text;not null;column:problemas_jornada" json:"problemas_jornada"`
	ProposedSolutions string    `gorm:"type:text;not null;column:propuesta_soluciones" json:"propuesta_soluciones"`
	CreatedAt         time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (ClosingForm) TableName() string { return "formularios_cierre" }

type IncidentForm struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Employees    pq.StringArray `gorm:"type:text[];not null;column:empleados_incidencia" json:"empleados_incidencia"`
	IncidentType string         `gorm:"size:100;not null;column:tipo_incidencia" json:"tipo_incidencia"`
	Observations string         `gorm:"type:text;column:observaciones" json:"observaciones"`
	CreatedAt    time.Time      `json:"created_at"`

	User  User           `gorm:"foreignKey:UserID" json:"user"`
	Files []IncidentFile `gorm:"foreignKey:IncidentID" json:"files,omitempty"`
}

func (IncidentForm) TableName() string { return "incidencias" }
