package handlers

import (
	"net/http"

	"findit/internal/db"
	"findit/internal/models"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List handles GET /api/notifications for the session user.
func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	var unread int64
	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", user.ID, false).
		Count(&unread)

	Success(c, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
		"unread":        unread,
	})
}

// Read handles POST /api/notifications/:id/read.
func (h *NotificationHandler) Read(c *gin.Context) {
	user := CurrentUser(c)

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&notification).Error; err != nil {
		Fail(c, http.StatusNotFound, "Notification not found")
		return
	}

	if err := db.DB.Model(&notification).Update("read", true).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	Success(c, gin.H{"message": "Notification marked as read"})
}

// ReadAll handles POST /api/notifications/read-all.
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := CurrentUser(c)

	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", user.ID, false).
		Update("read", true).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	Success(c, gin.H{"message": "All notifications marked as read"})
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&notification).Error; err != nil {
		Fail(c, http.StatusNotFound, "Notification not found")
		return
	}

	if err := db.DB.Delete(&notification).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	Success(c, gin.H{"message": "Notification deleted"})
}
