package models

import (
	"time"
)

// Category is seed reference data used to group items.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;unique" json:"name"`
	Emoji       string    `gorm:"size:50" json:"emoji"`
	Description string    `gorm:"type:text" json:"description"`
	ItemCount   int       `gorm:"default:0" json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
