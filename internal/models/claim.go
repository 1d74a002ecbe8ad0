package models

import (
	"time"
)

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// Claim is an ownership assertion made against an item. Claims never
// outlive their item.
type Claim struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	ItemID              uint        `gorm:"not null;index" json:"item_id"`
	Item                Item        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ClaimantName        string      `gorm:"not null" json:"claimant_name"`
	ClaimantEmail       string      `json:"claimant_email"`
	ClaimantPhone       string      `gorm:"size:50" json:"claimant_phone"`
	Description         string      `gorm:"type:text" json:"description"`
	VerificationDetails string      `gorm:"type:text" json:"verification_details"`
	Status              ClaimStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
}
