package models

import (
	"time"
)

// Message is a direct contact message about an item, addressed to the
// contact email the reporter left on it.
type Message struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ItemID        uint      `gorm:"not null;index" json:"item_id"`
	Item          Item      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	SenderName    string    `json:"sender_name"`
	SenderEmail   string    `gorm:"not null" json:"sender_email"`
	ReceiverEmail string    `gorm:"not null;index" json:"receiver_email"`
	Subject       string    `json:"subject"`
	Body          string    `gorm:"type:text;not null" json:"message"`
	Read          bool      `gorm:"default:false" json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}
