package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"findit/internal/db"
	"findit/internal/models"
	"findit/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageHandler struct{}

func NewMessageHandler() *MessageHandler {
	return &MessageHandler{}
}

type messageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Send handles POST /api/items/:id/message. The receiver is always the
// contact email the reporter left on the item.
func (h *MessageHandler) Send(c *gin.Context) {
	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		Fail(c, http.StatusNotFound, "Item not found")
		return
	}

	var item models.Item
	if err := db.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusNotFound, "Item not found")
			return
		}
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" || req.Message == "" {
		Fail(c, http.StatusBadRequest, "Email and message are required")
		return
	}

	message := models.Message{
		ItemID:        item.ID,
		SenderName:    req.Name,
		SenderEmail:   req.Email,
		ReceiverEmail: item.Contact,
		Subject:       req.Subject,
		Body:          utils.CleanText(req.Message),
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		if item.UserID == nil {
			return nil
		}
		sender := req.Name
		if sender == "" {
			sender = "Someone"
		}
		notification := models.Notification{
			UserID:  *item.UserID,
			ItemID:  &item.ID,
			Type:    models.NotificationTypeMessage,
			Title:   "New Message",
			Message: fmt.Sprintf("%s sent you a message about: %s", sender, item.Title),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	Success(c, gin.H{"message": "Message sent successfully!", "message_id": message.ID})
}

// Inbox handles GET /api/messages: messages addressed to the session
// user's email, newest first.
func (h *MessageHandler) Inbox(c *gin.Context) {
	user := CurrentUser(c)

	var messages []models.Message
	if err := db.DB.Where("receiver_email = ?", user.Email).
		Order("created_at DESC").
		Limit(50).
		Find(&messages).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	Success(c, gin.H{"messages": messages, "count": len(messages)})
}

// Read handles POST /api/messages/:id/read.
func (h *MessageHandler) Read(c *gin.Context) {
	user := CurrentUser(c)

	var message models.Message
	if err := db.DB.Where("id = ? AND receiver_email = ?", c.Param("id"), user.Email).First(&message).Error; err != nil {
		Fail(c, http.StatusNotFound, "Message not found")
		return
	}

	if err := db.DB.Model(&message).Update("read", true).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	Success(c, gin.H{"message": "Message marked as read"})
}
