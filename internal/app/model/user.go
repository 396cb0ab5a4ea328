package model

import (
	"time"

	"gorm.io/gorm"
)

// User is the account a Profile hangs off. Accounts are managed outside the
// public site, through the management CLI.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex;not null" json:"username" validate:"required,max=150"`
	Email        string    `gorm:"size:254" json:"email" validate:"omitempty,email,max=254"`
	FirstName    string    `gorm:"size:150" json:"first_name" validate:"max=150"`
	LastName     string    `gorm:"size:150" json:"last_name" validate:"max=150"`
	PasswordHash string    `gorm:"not null" json:"-" validate:"-"`
	CreatedAt    time.Time `json:"created_at"` // date joined
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) String() string {
	return u.Username
}

func (u *User) Validate() error {
	return validateRecord("user", u)
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}
