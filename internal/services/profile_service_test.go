package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trackforge/project-tracker-api/internal/constants"
	"github.com/trackforge/project-tracker-api/internal/models"
	"github.com/trackforge/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

func newProfileService(db *gorm.DB) *ProfileService {
	return NewProfileService(repository.NewProfileRepository(db), repository.NewUserRepository(db))
}

func TestProfileService_GetOrCreate_Vivifies(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	user := createUser(t, db, "alice")

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	require.Zero(t, count)

	profile, err := svc.GetOrCreate(user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.UserID)
	require.True(t, profile.EmailNotifications)
	require.False(t, profile.PublicProfile)
	require.Equal(t, constants.DefaultTimezone, profile.Timezone)
}

func TestProfileService_GetOrCreate_Idempotent(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	user := createUser(t, db, "alice")

	first, err := svc.GetOrCreate(user.ID)
	require.NoError(t, err)

	second, err := svc.GetOrCreate(user.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	user := createUser(t, db, "alice")

	profile, err := svc.UpdateProfile(user.ID, ProfileFields{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice.smith@example.com",
		Bio:       "Building things",
		Location:  "Berlin",
		BirthDate: "1990-04-12",
		Website:   "https://example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Building things", profile.Bio)
	require.NotNil(t, profile.BirthDate)

	var reloadedUser models.User
	require.NoError(t, db.First(&reloadedUser, user.ID).Error)
	require.Equal(t, "Alice", reloadedUser.FirstName)
	require.Equal(t, "alice.smith@example.com", reloadedUser.Email)
	require.Equal(t, "Alice Smith", reloadedUser.FullName())
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	user := createUser(t, db, "alice")
	createUser(t, db, "bob")

	_, err := svc.UpdateProfile(user.ID, ProfileFields{
		Email: "bob@example.com",
	})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, verr.Fields, "email")
}

func TestProfileService_UpdateSettings(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	user := createUser(t, db, "alice")

	profile, err := svc.UpdateSettings(user.ID, SettingsFields{
		EmailNotifications: false,
		PublicProfile:      true,
		Timezone:           "Europe/London",
	})
	require.NoError(t, err)
	require.False(t, profile.EmailNotifications)
	require.True(t, profile.PublicProfile)
	require.Equal(t, "Europe/London", profile.Timezone)

	var reloaded models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&reloaded).Error)
	require.Equal(t, "Europe/London", reloaded.Timezone)
}

func TestProfileService_UpdateSettings_MissingTimezone(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	user := createUser(t, db, "alice")

	_, err := svc.UpdateSettings(user.ID, SettingsFields{})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, verr.Fields, "timezone")
}
