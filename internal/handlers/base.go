package handlers

import (
	"net/http"

	"findit/internal/middleware"
	"findit/internal/models"

	"github.com/gin-gonic/gin"
)

// Success writes the standard `{"success": true, ...}` envelope with the
// given payload keys merged in.
func Success(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes the `{"success": false, "error": ...}` envelope.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// CurrentUser returns the session user loaded by middleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}
