package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"gorm.io/datatypes"
)

// LogAction appends to the global audit trail. Fire-and-forget: a failed
// write is logged and never surfaced to the caller.
var LogAction = func(c *gin.Context, userID *uint, action, outcome, details string, payload any, repo repositories.LogRepo) {
	entry := &models.ActionLog{
		UserID:  userID,
		Action:  action,
		Outcome: outcome,
		Details: details,
	}

	if c != nil {
		entry.IPAddress = c.ClientIP()
		entry.UserAgent = c.GetHeader("User-Agent")
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Audit payload marshal error: %v", err)
		} else {
			entry.Payload = datatypes.JSON(raw)
		}
	}

	if err := repo.CreateActionLog(entry); err != nil {
		log.Printf("Error writing action log: %v", err)
	}
}

// LogNotificationAction records a view/process action on a notification.
var LogNotificationAction = func(notificationID, userID uint, action, details string, repo repositories.LogRepo) {
	entry := &models.NotificationLog{
		NotificationID: notificationID,
		UserID:         userID,
		Action:         action,
		Details:        details,
	}
	if err := repo.CreateNotificationLog(entry); err != nil {
		log.Printf("Error writing notification log: %v", err)
	}
}
