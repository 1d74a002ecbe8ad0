package models

import (
	"time"
)

// ActivityLog is an append-only audit trail. Rows keep their action and IP
// even after the user or item they reference is gone.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	ItemID    *uint     `gorm:"index" json:"item_id"`
	Item      *Item     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"size:50" json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
