package repository

import (
	"errors"
	"testing"

	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/internal/db"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupLettingTest(t *testing.T) (*gorm.DB, LettingRepository, AddressRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return testDB, NewLettingRepository(testDB), NewAddressRepository(testDB)
}

func testAddress() model.Address {
	return model.Address{
		Number:         18,
		Street:         "Test Street View",
		City:           "Test City View",
		State:          "Test State View",
		ZipCode:        52369,
		CountryISOCode: "74125",
	}
}

func TestLettingRepository_Create(t *testing.T) {
	_, repo, addressRepo := setupLettingTest(t)

	tests := []struct {
		name    string
		letting *model.Letting
		wantErr bool
	}{
		{
			name:    "Valid letting with new address",
			letting: &model.Letting{Title: "Test House 1", Address: testAddress()},
			wantErr: false,
		},
		{
			name:    "Missing address",
			letting: &model.Letting{Title: "Homeless"},
			wantErr: true,
		},
		{
			name:    "Missing title",
			letting: &model.Letting{Address: testAddress()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.letting)

			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				assert.Zero(t, tt.letting.ID)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, tt.letting.ID)
				assert.NotZero(t, tt.letting.AddressID)
			}
		})
	}

	count, err := addressRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLettingRepository_Create_InvalidAddressNotPersisted(t *testing.T) {
	_, repo, addressRepo := setupLettingTest(t)

	address := testAddress()
	address.Number = 10000
	err := repo.Create(&model.Letting{Title: "Too Far Down The Street", Address: address})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	count, err := addressRepo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLettingRepository_Create_ExistingAddress(t *testing.T) {
	_, repo, addressRepo := setupLettingTest(t)

	address := testAddress()
	require.NoError(t, addressRepo.Create(&address))

	letting := &model.Letting{Title: "Test House 2", AddressID: address.ID}
	require.NoError(t, repo.Create(letting))

	// An address belongs to a single letting.
	err := repo.Create(&model.Letting{Title: "Test House 3", AddressID: address.ID})
	assert.Error(t, err)
}

func TestLettingRepository_FindByID(t *testing.T) {
	_, repo, _ := setupLettingTest(t)

	letting := &model.Letting{Title: "Test House 1", Address: testAddress()}
	require.NoError(t, repo.Create(letting))

	tests := []struct {
		name    string
		id      uint
		wantErr bool
	}{
		{
			name:    "Existing letting",
			id:      letting.ID,
			wantErr: false,
		},
		{
			name:    "Non-existing letting",
			id:      6,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByID(tt.id)

			if tt.wantErr {
				assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Test House 1", found.Title)
				assert.Equal(t, "18 Test Street View", found.Address.String())
			}
		})
	}
}

func TestLettingRepository_FindAll(t *testing.T) {
	_, repo, _ := setupLettingTest(t)

	lettings, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, lettings)

	second := testAddress()
	second.Number = 19
	require.NoError(t, repo.Create(&model.Letting{Title: "Test House 1", Address: testAddress()}))
	require.NoError(t, repo.Create(&model.Letting{Title: "Test House 2", Address: second}))

	lettings, err = repo.FindAll()
	require.NoError(t, err)
	require.Len(t, lettings, 2)
	for _, l := range lettings {
		assert.NotZero(t, l.Address.ID)
	}
}

func TestLettingRepository_Delete_RemovesAddress(t *testing.T) {
	_, repo, addressRepo := setupLettingTest(t)

	letting := &model.Letting{Title: "Test House 1", Address: testAddress()}
	require.NoError(t, repo.Create(letting))

	require.NoError(t, repo.Delete(letting.ID))

	_, err := repo.FindByID(letting.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = addressRepo.FindByID(letting.AddressID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(letting.ID), gorm.ErrRecordNotFound)
}

func TestAddressRepository_Delete_RemovesLetting(t *testing.T) {
	_, repo, addressRepo := setupLettingTest(t)

	letting := &model.Letting{Title: "Test House 1", Address: testAddress()}
	require.NoError(t, repo.Create(letting))

	require.NoError(t, addressRepo.Delete(letting.AddressID))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
