package model

import (
	"time"

	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"gorm.io/gorm"
)

// Profile extends a User with site preferences. Deleting the User deletes
// the Profile.
type Profile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex" json:"user_id" validate:"-"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user" validate:"-"`
	FavoriteCity string    `gorm:"size:64" json:"favorite_city" validate:"max=64"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p Profile) String() string {
	return p.User.Username
}

func (p *Profile) Validate() error {
	if err := validateRecord("profile", p); err != nil {
		return err
	}
	if p.UserID == 0 && p.User.ID == 0 {
		return apperrors.NewValidationError("profile", "user", apperrors.ValidationRequired)
	}
	return nil
}

func (p *Profile) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}
