package repository

import (
	"github.com/trackforge/project-tracker-api/internal/constants"
	"github.com/trackforge/project-tracker-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByUserID finds the profile attached to a user
func (r *GormProfileRepository) FindByUserID(userID uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreate returns the user's profile, creating a default one when
// absent. The unique index on user_id makes concurrent first accesses safe:
// the loser of the insert race re-reads the winner's row.
func (r *GormProfileRepository) GetOrCreate(userID uint64) (*models.Profile, error) {
	var profile models.Profile

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err == nil {
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		profile = models.Profile{
			UserID:             userID,
			EmailNotifications: true,
			Timezone:           constants.DefaultTimezone,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&profile).Error; err != nil {
			return err
		}
		if profile.ID != 0 {
			return nil
		}

		return tx.Where("user_id = ?", userID).First(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Update updates a profile
func (r *GormProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
