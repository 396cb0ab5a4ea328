package model

import (
	"time"

	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"gorm.io/gorm"
)

// Letting is a rental property. It owns exactly one Address.
type Letting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:256;not null" json:"title" validate:"required,max=256"`
	AddressID uint      `gorm:"not null;uniqueIndex" json:"address_id" validate:"-"`
	Address   Address   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"address" validate:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Letting) TableName() string {
	return "lettings"
}

func (l Letting) String() string {
	return l.Title
}

// Validate checks the title and that an address is attached, either by id
// or as a not-yet-saved value.
func (l *Letting) Validate() error {
	if err := validateRecord("letting", l); err != nil {
		return err
	}
	if l.AddressID == 0 && l.Address.ID == 0 {
		if l.Address == (Address{}) {
			return apperrors.NewValidationError("letting", "address", apperrors.ValidationRequired)
		}
		return l.Address.Validate()
	}
	return nil
}

func (l *Letting) BeforeSave(tx *gorm.DB) error {
	return l.Validate()
}
