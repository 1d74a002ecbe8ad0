package models

import (
	"strings"
	"time"
)

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Username           string    `gorm:"not null" json:"username"` // Set to the email at registration
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Password           string    `gorm:"not null" json:"-"` // Hash
	FirstName          string    `gorm:"size:150" json:"first_name"`
	LastName           string    `gorm:"size:150" json:"last_name"`
	Phone              string    `gorm:"size:50" json:"phone"`
	Location           string    `json:"location"`
	Bio                string    `gorm:"type:text" json:"bio"`
	AvatarPath         string    `json:"avatar_path"`
	Verified           bool      `gorm:"default:false" json:"verified"`
	EmailNotifications bool      `gorm:"default:true" json:"email_notifications"`
	SmsNotifications   bool      `gorm:"default:false" json:"sms_notifications"`
	ProfileVisibility  string    `gorm:"size:50;default:'members'" json:"profile_visibility"`
	ShowPhone          bool      `gorm:"default:false" json:"show_phone"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DisplayName returns the user's full name, falling back to the username.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return u.Username
}
