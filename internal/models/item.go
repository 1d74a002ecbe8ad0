package models

import (
	"time"
)

type ItemStatus string

const (
	ItemStatusLost      ItemStatus = "lost"
	ItemStatusFound     ItemStatus = "found"
	ItemStatusRecovered ItemStatus = "recovered"
)

type Item struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          *uint      `gorm:"index" json:"user_id"` // Nullable: anonymous reports, and reporters may be deleted
	User            *User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Status          ItemStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Category        string     `gorm:"size:50;not null;index" json:"category"`
	Location        string     `gorm:"not null" json:"location"`
	Date            string     `gorm:"size:50" json:"date"` // Free-text, exactly as submitted
	Time            string     `gorm:"size:50" json:"time"`
	PostedBy        string     `json:"posted_by"`
	Contact         string     `json:"contact"`
	Reward          string     `json:"reward"`
	AdditionalInfo  string     `gorm:"type:text" json:"additional_info"`
	ImagePath       string     `json:"image_path"`
	CurrentLocation string     `json:"current_location"` // Where a found item is being kept
	Views           int        `gorm:"default:0" json:"views"`
	CreatedAt       time.Time  `gorm:"index" json:"date_reported"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
