package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"findit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsRequireAuth(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication required", body["error"])
}

func TestNotificationLifecycle(t *testing.T) {
	r, conn := setupAPI(t)

	userID := registerUser(t, r, "John Doe", "john@example.com", "password123")
	cookies := loginUser(t, r, "john@example.com", "password123")

	for i := 0; i < 3; i++ {
		notification := models.Notification{
			UserID:  userID,
			Type:    models.NotificationTypeSystem,
			Title:   "Welcome",
			Message: fmt.Sprintf("notification %d", i),
		}
		require.NoError(t, conn.Create(&notification).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/notifications", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.EqualValues(t, 3, body["count"])
	assert.EqualValues(t, 3, body["unread"])

	first := body["notifications"].([]any)[0].(map[string]any)
	id := uint(first["id"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", id), nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", nil, cookies...)
	assert.EqualValues(t, 2, decode(t, w)["unread"])

	w = doJSON(t, r, http.MethodPost, "/api/notifications/read-all", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", nil, cookies...)
	assert.EqualValues(t, 0, decode(t, w)["unread"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", id), nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", nil, cookies...)
	assert.EqualValues(t, 2, decode(t, w)["count"])
}

func TestNotificationScopedToOwner(t *testing.T) {
	r, conn := setupAPI(t)

	ownerID := registerUser(t, r, "John Doe", "john@example.com", "password123")
	registerUser(t, r, "Jane Roe", "jane@example.com", "password123")
	cookies := loginUser(t, r, "jane@example.com", "password123")

	notification := models.Notification{
		UserID: ownerID,
		Type:   models.NotificationTypeSystem,
		Title:  "Private",
	}
	require.NoError(t, conn.Create(&notification).Error)

	// Another user's notification is invisible: read and delete both 404
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", notification.ID), nil, cookies...)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", notification.ID), nil, cookies...)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", nil, cookies...)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}
