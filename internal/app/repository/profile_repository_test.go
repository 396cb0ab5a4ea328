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

func setupProfileTest(t *testing.T) (UserRepository, ProfileRepository, *model.User) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := NewUserRepository(testDB)
	user := &model.User{
		Username:     "Test User",
		Email:        "john.doe@mail.com",
		FirstName:    "John",
		LastName:     "Doe",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, userRepo.Create(user))

	return userRepo, NewProfileRepository(testDB), user
}

func TestUserRepository_Create(t *testing.T) {
	userRepo, _, _ := setupProfileTest(t)

	tests := []struct {
		name    string
		user    *model.User
		wantErr bool
	}{
		{
			name:    "Valid user",
			user:    &model.User{Username: "jane", PasswordHash: "hash"},
			wantErr: false,
		},
		{
			name:    "Duplicate username",
			user:    &model.User{Username: "Test User", PasswordHash: "hash"},
			wantErr: true,
		},
		{
			name:    "Missing username",
			user:    &model.User{PasswordHash: "hash"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := userRepo.Create(tt.user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestProfileRepository_Create(t *testing.T) {
	_, repo, user := setupProfileTest(t)

	profile := &model.Profile{User: *user, FavoriteCity: "Test City"}
	require.NoError(t, repo.Create(profile))
	assert.NotZero(t, profile.ID)
	assert.Equal(t, user.ID, profile.UserID)

	// One profile per user.
	assert.Error(t, repo.Create(&model.Profile{UserID: user.ID}))

	err := repo.Create(&model.Profile{FavoriteCity: "Nowhere"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestProfileRepository_FindByUsername(t *testing.T) {
	_, repo, user := setupProfileTest(t)
	require.NoError(t, repo.Create(&model.Profile{UserID: user.ID, FavoriteCity: "Test City"}))

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "Existing username",
			username: "Test User",
			wantErr:  false,
		},
		{
			name:     "Non-existing username",
			username: "Invalid Test Username",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByUsername(tt.username)

			if tt.wantErr {
				assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Test City", found.FavoriteCity)
				assert.Equal(t, "Test User", found.String())
			}
		})
	}
}

func TestProfileRepository_FindAll(t *testing.T) {
	userRepo, repo, user := setupProfileTest(t)

	profiles, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, profiles)

	other := &model.User{Username: "jane", PasswordHash: "hash"}
	require.NoError(t, userRepo.Create(other))
	require.NoError(t, repo.Create(&model.Profile{UserID: user.ID}))
	require.NoError(t, repo.Create(&model.Profile{UserID: other.ID, FavoriteCity: "Lyon"}))

	profiles, err = repo.FindAll()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	usernames := []string{profiles[0].User.Username, profiles[1].User.Username}
	assert.ElementsMatch(t, []string{"Test User", "jane"}, usernames)
}

func TestUserRepository_Delete_RemovesProfile(t *testing.T) {
	userRepo, repo, user := setupProfileTest(t)
	require.NoError(t, repo.Create(&model.Profile{UserID: user.ID}))

	require.NoError(t, userRepo.Delete(user.ID))

	_, err := userRepo.FindByUsername("Test User")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, userRepo.Delete(user.ID), gorm.ErrRecordNotFound)
}

func TestProfileRepository_Delete(t *testing.T) {
	userRepo, repo, user := setupProfileTest(t)
	profile := &model.Profile{UserID: user.ID}
	require.NoError(t, repo.Create(profile))

	require.NoError(t, repo.Delete(profile.ID))

	// The account survives its profile.
	_, err := userRepo.FindByID(user.ID)
	assert.NoError(t, err)
	assert.ErrorIs(t, repo.Delete(profile.ID), gorm.ErrRecordNotFound)
}
