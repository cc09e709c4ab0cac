package dto

type ListNotificationsQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Status string `form:"estado"`
	Read   string `form:"leida"`
}

type ProcessNotificationDTO struct {
	Status  string `json:"estado" binding:"required,oneof=procesada rechazada"`
	Comment string `json:"observaciones_procesamiento"`
}
