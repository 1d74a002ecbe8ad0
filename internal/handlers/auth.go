package handlers

import (
	"errors"
	"net/http"
	"time"

	"findit/internal/db"
	"findit/internal/models"
	"findit/internal/services"
	"findit/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		Fail(c, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	firstName, lastName := utils.SplitName(req.Name)

	// The email doubles as the username since it must be unique.
	user := models.User{
		Username:  req.Email,
		Email:     req.Email,
		Password:  hash,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     req.Phone,
	}

	// The unique index decides duplicates, so concurrent registrations
	// cannot race past a lookup
	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Fail(c, http.StatusConflict, "Email already registered")
			return
		}
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordActivity(&user.ID, nil, "register", "", c.ClientIP())

	Success(c, gin.H{
		"message": "Registration successful! Please log in.",
		"user_id": user.ID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		Fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	services.RecordActivity(&user.ID, nil, "login", "", c.ClientIP())

	Success(c, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"name":      user.DisplayName(),
			"email":     user.Email,
			"phone":     user.Phone,
			"location":  user.Location,
			"join_date": user.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	Success(c, gin.H{"message": "Logged out"})
}
