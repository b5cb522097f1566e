package services

import (
	"errors"
	"fmt"

	"github.com/trackforge/project-tracker-api/internal/models"
	"github.com/trackforge/project-tracker-api/internal/repository"
	"github.com/trackforge/project-tracker-api/internal/validation"
	"gorm.io/gorm"
)

// ProfileService handles profile access and edits. Profiles are created
// lazily: the first access vivifies a default row, never an error.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetOrCreate returns the user's profile, creating one with defaults on
// first access. Idempotent.
func (s *ProfileService) GetOrCreate(userID uint64) (*models.Profile, error) {
	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create profile: %w", err)
	}
	return profile, nil
}

// ProfileFields is the validated input for editing a profile. It carries the
// user's name and email alongside the profile attributes, matching the edit
// form of the original tracker.
type ProfileFields struct {
	FirstName string `json:"first_name" validate:"max=30"`
	LastName  string `json:"last_name" validate:"max=30"`
	Email     string `json:"email" validate:"required,email"`
	Bio       string `json:"bio" validate:"max=500"`
	Location  string `json:"location" validate:"max=100"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Website   string `json:"website" validate:"omitempty,url"`
	Phone     string `json:"phone" validate:"max=20"`
}

// UpdateProfile validates and applies profile + user identity fields.
func (s *ProfileService) UpdateProfile(userID uint64, fields ProfileFields) (*models.Profile, error) {
	if errs := validation.Struct(fields); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if fields.Email != user.Email {
		if other, err := s.userRepo.FindByEmail(fields.Email); err == nil && other.ID != userID {
			return nil, NewValidationError("email", "That email address is already in use.")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create profile: %w", err)
	}

	user.FirstName = fields.FirstName
	user.LastName = fields.LastName
	user.Email = fields.Email
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	profile.Bio = fields.Bio
	profile.Location = fields.Location
	profile.BirthDate = parseDate(fields.BirthDate)
	profile.Website = fields.Website
	profile.Phone = fields.Phone
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// SettingsFields is the validated input for the settings form.
type SettingsFields struct {
	EmailNotifications bool   `json:"email_notifications"`
	PublicProfile      bool   `json:"public_profile"`
	Timezone           string `json:"timezone" validate:"required,max=50"`
}

// UpdateSettings applies the notification/visibility/timezone settings.
func (s *ProfileService) UpdateSettings(userID uint64, fields SettingsFields) (*models.Profile, error) {
	if errs := validation.Struct(fields); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create profile: %w", err)
	}

	profile.EmailNotifications = fields.EmailNotifications
	profile.PublicProfile = fields.PublicProfile
	profile.Timezone = fields.Timezone
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return profile, nil
}
