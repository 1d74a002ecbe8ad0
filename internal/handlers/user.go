package handlers

import (
	"errors"
	"net/http"

	"findit/internal/db"
	"findit/internal/models"
	"findit/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Stats handles GET /api/users/:id/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		Fail(c, http.StatusNotFound, "User not found")
		return
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusNotFound, "User not found")
			return
		}
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	countByStatus := func(status models.ItemStatus) int64 {
		var n int64
		db.DB.Model(&models.Item{}).Where("user_id = ? AND status = ?", user.ID, status).Count(&n)
		return n
	}

	var total int64
	db.DB.Model(&models.Item{}).Where("user_id = ?", user.ID).Count(&total)

	Success(c, gin.H{
		"stats": gin.H{
			"total":     total,
			"lost":      countByStatus(models.ItemStatusLost),
			"found":     countByStatus(models.ItemStatusFound),
			"recovered": countByStatus(models.ItemStatusRecovered),
		},
	})
}

type profileNotifications struct {
	Email *bool `json:"email"`
	SMS   *bool `json:"sms"`
}

type profilePrivacy struct {
	Visibility *string `json:"visibility"`
	ShowPhone  *bool   `json:"showPhone"`
}

// updateProfileRequest uses pointers throughout: absent fields keep their
// stored value.
type updateProfileRequest struct {
	Name          *string               `json:"name"`
	Phone         *string               `json:"phone"`
	Location      *string               `json:"location"`
	Bio           *string               `json:"bio"`
	Notifications *profileNotifications `json:"notifications"`
	Privacy       *profilePrivacy       `json:"privacy"`
}

// UpdateProfile handles PUT /api/users/:id with partial-update semantics.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		Fail(c, http.StatusNotFound, "User not found")
		return
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusNotFound, "User not found")
			return
		}
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name != nil {
		user.FirstName, user.LastName = utils.SplitName(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = utils.CleanText(*req.Bio)
	}
	if req.Notifications != nil {
		if req.Notifications.Email != nil {
			user.EmailNotifications = *req.Notifications.Email
		}
		if req.Notifications.SMS != nil {
			user.SmsNotifications = *req.Notifications.SMS
		}
	}
	if req.Privacy != nil {
		if req.Privacy.Visibility != nil {
			user.ProfileVisibility = *req.Privacy.Visibility
		}
		if req.Privacy.ShowPhone != nil {
			user.ShowPhone = *req.Privacy.ShowPhone
		}
	}

	if err := db.DB.Save(&user).Error; err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	Success(c, gin.H{"message": "Profile updated successfully"})
}
