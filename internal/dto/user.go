package dto

import (
	"time"

	"github.com/trackforge/project-tracker-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// ProfileDTO represents a profile in API responses
type ProfileDTO struct {
	ID                 uint64     `json:"id"`
	UserID             uint64     `json:"user_id"`
	Bio                string     `json:"bio"`
	Location           string     `json:"location"`
	BirthDate          *time.Time `json:"birth_date"`
	Avatar             string     `json:"avatar"`
	Website            string     `json:"website"`
	Phone              string     `json:"phone"`
	EmailNotifications bool       `json:"email_notifications"`
	PublicProfile      bool       `json:"public_profile"`
	Timezone           string     `json:"timezone"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
	}
}

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:                 profile.ID,
		UserID:             profile.UserID,
		Bio:                profile.Bio,
		Location:           profile.Location,
		BirthDate:          profile.BirthDate,
		Avatar:             profile.Avatar,
		Website:            profile.Website,
		Phone:              profile.Phone,
		EmailNotifications: profile.EmailNotifications,
		PublicProfile:      profile.PublicProfile,
		Timezone:           profile.Timezone,
	}
}
