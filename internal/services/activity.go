package services

import (
	"log"

	"findit/internal/db"
	"findit/internal/models"
)

// RecordActivity appends one audit-trail row. Best effort: a failed write
// is logged and never surfaces to the request.
func RecordActivity(userID, itemID *uint, action, details, ip string) {
	entry := models.ActivityLog{
		UserID:    userID,
		ItemID:    itemID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		log.Printf("Failed to record activity %q: %v", action, err)
	}
}
