package dto

// List fields must be present as lists (possibly empty); nil slices are
// normalized to empty by the service so Postgres arrays never store NULL.
type CreateOpeningFormDTO struct {
	NonOperativeStaff    []string `json:"empleados_no_operativos"`
	StaffOnLeave         []string `json:"empleados_baja"`
	NonOperativeVehicles []string `json:"vehiculos_no_operativos"`
	NeedReplacement      []string `json:"necesitan_sustitucion"`
	NotConnected         []string `json:"no_conectados_plataforma"`
	DeadPhoneBattery     []string `json:"sin_bateria_movil"`
	DeadVehicleBattery   []string `json:"sin_bateria_vehiculo"`
	Observations         string   `json:"observaciones"`
}

type CreateClosingFormDTO struct {
	DataAnalysis      string `json:"analisis_datos" binding:"required"`
	ShiftProblems     string `json:"problemas_jornada" binding:"required"`
	ProposedSolutions string `json:"propuesta_soluciones" binding:"required"`
}

// Incidents arrive as multipart form data so files can ride along; the
// employee list is a repeated form field.
type CreateIncidentFormDTO struct {
	Employees    []string `form:"empleados_incidencia" binding:"required"`
	IncidentType string   `form:"tipo_incidencia" binding:"required"`
	Observations string   `form:"observaciones"`
}

type ListFormsQuery struct {
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=20"`
	Date  string `form:"fecha"`
	Type  string `form:"tipo"`
}

type StatsQuery struct {
	DateFrom string `form:"fecha_inicio"`
	DateTo   string `form:"fecha_fin"`
}

type ExportQuery struct {
	DateFrom string `form:"fecha_desde" binding:"required"`
	DateTo   string `form:"fecha_hasta" binding:"required"`
	Format   string `form:"formato,default=csv"`
}
