package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"gorm.io/gorm"
)

// Address is the physical location of a Letting. Each Address is owned by
// at most one Letting.
type Address struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Number         uint      `gorm:"not null" json:"number" validate:"max=9999"`
	Street         string    `gorm:"size:64;not null" json:"street" validate:"required,max=64"`
	City           string    `gorm:"size:64;not null" json:"city" validate:"required,max=64"`
	State          string    `gorm:"size:64;not null" json:"state" validate:"min=2,max=64"`
	ZipCode        uint      `gorm:"not null" json:"zip_code" validate:"max=99999"`
	CountryISOCode string    `gorm:"size:64;not null" json:"country_iso_code" validate:"min=3,max=64"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}

func (a Address) String() string {
	return fmt.Sprintf("%d %s", a.Number, a.Street)
}

func (a *Address) Validate() error {
	return validateRecord("address", a)
}

func (a *Address) BeforeSave(tx *gorm.DB) error {
	return a.Validate()
}

// AddressInput carries raw address fields as received from a form,
// a CLI flag set or a spreadsheet row.
type AddressInput struct {
	Number         string
	Street         string
	City           string
	State          string
	ZipCode        string
	CountryISOCode string
}

// NewAddress parses and validates in. Nothing is persisted.
func NewAddress(in AddressInput) (*Address, error) {
	invalid := &apperrors.ValidationError{Kind: "address", Fields: map[string]string{}}

	number, err := parsePositive(in.Number)
	if err != nil {
		invalid.Fields["number"] = apperrors.ValidationInvalidFormat
	}
	zip, err := parsePositive(in.ZipCode)
	if err != nil {
		invalid.Fields["zip_code"] = apperrors.ValidationInvalidFormat
	}
	if len(invalid.Fields) > 0 {
		return nil, invalid
	}

	address := &Address{
		Number:         number,
		Street:         strings.TrimSpace(in.Street),
		City:           strings.TrimSpace(in.City),
		State:          strings.TrimSpace(in.State),
		ZipCode:        zip,
		CountryISOCode: strings.TrimSpace(in.CountryISOCode),
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	return address, nil
}

func parsePositive(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
