package models

import (
	"time"
)

// Profile holds the optional attributes and settings attached one-to-one to a
// user. At most one row exists per user; creation goes through
// ProfileService.GetOrCreate rather than signup.
type Profile struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	UserID   uint64 `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio      string `gorm:"type:varchar(500)" json:"bio"`
	Location string `gorm:"type:varchar(100)" json:"location"`
	// Date-only, stored at midnight UTC.
	BirthDate *time.Time `json:"birth_date"`
	Avatar    string     `gorm:"type:varchar(255)" json:"avatar"`
	Website   string     `gorm:"type:varchar(255)" json:"website"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone"`

	// Settings
	EmailNotifications bool   `gorm:"not null;default:true" json:"email_notifications"`
	PublicProfile      bool   `gorm:"not null;default:false" json:"public_profile"`
	Timezone           string `gorm:"type:varchar(50);not null;default:'UTC'" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
