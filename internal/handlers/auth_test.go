package handlers_test

import (
	"net/http"
	"testing"

	"findit/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r, conn := setupAPI(t)

	userID := registerUser(t, r, "John Doe", "john@example.com", "password123")
	assert.NotZero(t, userID)

	var user models.User
	require.NoError(t, conn.First(&user, userID).Error)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "john@example.com", user.Username)
	assert.NotEqual(t, "password123", user.Password)

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "john@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])

	summary := body["user"].(map[string]any)
	assert.Equal(t, "John Doe", summary["name"])
	assert.Equal(t, "john@example.com", summary["email"])
	assert.NotEmpty(t, summary["join_date"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, conn := setupAPI(t)

	registerUser(t, r, "John Doe", "john@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"name":     "Jane Doe",
		"email":    "john@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already registered", body["error"])

	var count int64
	conn.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "conflict must not create a user row")
}

func TestRegisterMissingFields(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"name":  "John Doe",
		"email": "john@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Name, email, and password are required", body["error"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupAPI(t)

	registerUser(t, r, "John Doe", "john@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "john@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])

	w = doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{"email": "john@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password are required", decode(t, w)["error"])
}
