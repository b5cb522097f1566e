package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/trackforge/project-tracker-api/internal/constants"
	"github.com/trackforge/project-tracker-api/internal/dto"
	"github.com/trackforge/project-tracker-api/internal/models"
	"github.com/trackforge/project-tracker-api/internal/repository"
	"github.com/trackforge/project-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProfileTest(t *testing.T) (*gorm.DB, *ProfileHandler, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Profile{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	user := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)

	profileService := services.NewProfileService(
		repository.NewProfileRepository(db),
		repository.NewUserRepository(db),
	)
	return db, NewProfileHandler(profileService), user
}

func profileContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)
	return c, w
}

func TestProfileHandler_GetProfile_AutoVivifies(t *testing.T) {
	db, handler, user := setupProfileTest(t)

	c, w := profileContext(http.MethodGet, "/api/profile", nil, user.ID)
	handler.GetProfile(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.UserID)
	require.True(t, response.EmailNotifications)
	require.Equal(t, "UTC", response.Timezone)

	// Second access reuses the same row
	c, w = profileContext(http.MethodGet, "/api/profile", nil, user.ID)
	handler.GetProfile(c)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestProfileHandler_UpdateProfile_Validation(t *testing.T) {
	_, handler, user := setupProfileTest(t)

	body, _ := json.Marshal(map[string]string{
		"email":   "not-an-email",
		"website": "not a url",
	})
	c, w := profileContext(http.MethodPost, "/api/profile/edit", body, user.ID)
	handler.UpdateProfile(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	details := response["details"].(map[string]interface{})
	require.Contains(t, details, "email")
	require.Contains(t, details, "website")
}

func TestProfileHandler_UpdateSettings(t *testing.T) {
	db, handler, user := setupProfileTest(t)

	body, _ := json.Marshal(map[string]interface{}{
		"email_notifications": false,
		"public_profile":      true,
		"timezone":            "America/New_York",
	})
	c, w := profileContext(http.MethodPost, "/api/profile/settings", body, user.ID)
	handler.UpdateSettings(c)

	require.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	require.False(t, profile.EmailNotifications)
	require.True(t, profile.PublicProfile)
	require.Equal(t, "America/New_York", profile.Timezone)
}
