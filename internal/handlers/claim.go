package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"findit/internal/db"
	"findit/internal/models"
	"findit/internal/services"
	"findit/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClaimHandler struct{}

func NewClaimHandler() *ClaimHandler {
	return &ClaimHandler{}
}

type claimRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Description  string `json:"description"`
	Verification string `json:"verification"`
}

// Submit handles POST /api/items/:id/claim. Every claim starts pending;
// repeated claims from the same claimant are stored independently.
func (h *ClaimHandler) Submit(c *gin.Context) {
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

	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	claimantName := req.Name
	if claimantName == "" {
		claimantName = "Anonymous"
	}

	claim := models.Claim{
		ItemID:              item.ID,
		ClaimantName:        claimantName,
		ClaimantEmail:       req.Email,
		ClaimantPhone:       req.Phone,
		Description:         utils.CleanText(req.Description),
		VerificationDetails: utils.CleanText(req.Verification),
		Status:              models.ClaimStatusPending,
	}

	// The claim and the owner notification land together or not at all
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&claim).Error; err != nil {
			return err
		}
		if item.UserID == nil {
			return nil
		}
		actor := req.Name
		if actor == "" {
			actor = "Someone"
		}
		notification := models.Notification{
			UserID:  *item.UserID,
			ItemID:  &item.ID,
			Type:    models.NotificationTypeClaim,
			Title:   "New Claim Received",
			Message: fmt.Sprintf("%s has claimed your item: %s", actor, item.Title),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordActivity(item.UserID, &item.ID, "claim_item", claimantName, c.ClientIP())

	Success(c, gin.H{"message": "Claim submitted successfully!", "claim_id": claim.ID})
}
