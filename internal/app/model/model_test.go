package model

import (
	"errors"
	"testing"

	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressInput() AddressInput {
	return AddressInput{
		Number:         "15",
		Street:         "Test Street",
		City:           "Test City",
		State:          "TE",
		ZipCode:        "12345",
		CountryISOCode: "789",
	}
}

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(in *AddressInput)
		wantField  string
		wantCode   string
		wantNumber uint
	}{
		{
			name:       "Valid address",
			mutate:     func(in *AddressInput) {},
			wantNumber: 15,
		},
		{
			name:      "Non-numeric number",
			mutate:    func(in *AddressInput) { in.Number = "one" },
			wantField: "number",
			wantCode:  apperrors.ValidationInvalidFormat,
		},
		{
			name:      "Negative zip code",
			mutate:    func(in *AddressInput) { in.ZipCode = "-5" },
			wantField: "zip_code",
			wantCode:  apperrors.ValidationInvalidFormat,
		},
		{
			name:      "Number above bound",
			mutate:    func(in *AddressInput) { in.Number = "10000" },
			wantField: "number",
			wantCode:  apperrors.ValidationInvalidRange,
		},
		{
			name:      "Zip code above bound",
			mutate:    func(in *AddressInput) { in.ZipCode = "100000" },
			wantField: "zip_code",
			wantCode:  apperrors.ValidationInvalidRange,
		},
		{
			name:      "State too short",
			mutate:    func(in *AddressInput) { in.State = "T" },
			wantField: "state",
			wantCode:  apperrors.ValidationTooShort,
		},
		{
			name:      "Country code too short",
			mutate:    func(in *AddressInput) { in.CountryISOCode = "FR" },
			wantField: "country_iso_code",
			wantCode:  apperrors.ValidationTooShort,
		},
		{
			name: "Street too long",
			mutate: func(in *AddressInput) {
				in.Street = "a very long street name that keeps going past the sixty four limit"
			},
			wantField: "street",
			wantCode:  apperrors.ValidationTooLong,
		},
		{
			name:      "Missing city",
			mutate:    func(in *AddressInput) { in.City = "  " },
			wantField: "city",
			wantCode:  apperrors.ValidationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAddressInput()
			tt.mutate(&in)

			address, err := NewAddress(in)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantNumber, address.Number)
				return
			}

			require.Error(t, err)
			assert.Nil(t, address)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))

			var invalid *apperrors.ValidationError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.wantCode, invalid.Fields[tt.wantField])
		})
	}
}

func TestAddress_String(t *testing.T) {
	address, err := NewAddress(validAddressInput())
	require.NoError(t, err)

	assert.Equal(t, "15 Test Street", address.String())
}

func TestLetting_Validate(t *testing.T) {
	address, err := NewAddress(validAddressInput())
	require.NoError(t, err)

	assert.NoError(t, (&Letting{Title: "Test Title", Address: *address}).Validate())
	assert.NoError(t, (&Letting{Title: "Test Title", AddressID: 4}).Validate())

	err = (&Letting{Title: "Test Title"}).Validate()
	var invalid *apperrors.ValidationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, apperrors.ValidationRequired, invalid.Fields["address"])

	err = (&Letting{AddressID: 4}).Validate()
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, apperrors.ValidationRequired, invalid.Fields["title"])

	assert.Equal(t, "Test Title", Letting{Title: "Test Title"}.String())
}

func TestProfile_Validate(t *testing.T) {
	assert.NoError(t, (&Profile{UserID: 1, FavoriteCity: "Paris"}).Validate())
	assert.NoError(t, (&Profile{User: User{ID: 2, Username: "jdoe"}}).Validate())

	err := (&Profile{FavoriteCity: "Paris"}).Validate()
	var invalid *apperrors.ValidationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, apperrors.ValidationRequired, invalid.Fields["user"])

	assert.Equal(t, "jdoe", Profile{User: User{Username: "jdoe"}}.String())
}

func TestUser_Validate(t *testing.T) {
	assert.NoError(t, (&User{Username: "jdoe", Email: "john.doe@mail.com"}).Validate())
	assert.NoError(t, (&User{Username: "jdoe"}).Validate())

	err := (&User{Username: "jdoe", Email: "not-an-email"}).Validate()
	var invalid *apperrors.ValidationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, apperrors.ValidationInvalidInput, invalid.Fields["email"])

	err = (&User{}).Validate()
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, apperrors.ValidationRequired, invalid.Fields["username"])
}
