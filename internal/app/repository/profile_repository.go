package repository

import (
	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
	FindAll() ([]model.Profile, error)
	FindByUsername(username string) (*model.Profile, error)
	Delete(id uint) error
	Count() (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *model.Profile) error {
	logger.Debug("Creating profile in database", map[string]interface{}{
		"user_id": profile.UserID,
	})

	if profile.UserID == 0 {
		profile.UserID = profile.User.ID
	}
	if err := r.db.Omit("User").Create(profile).Error; err != nil {
		logger.Error("Failed to create profile in database", err, map[string]interface{}{
			"user_id": profile.UserID,
		})
		return err
	}

	logger.Debug("Profile created in database", map[string]interface{}{
		"profile_id": profile.ID,
		"user_id":    profile.UserID,
	})
	return nil
}

func (r *profileRepository) FindAll() ([]model.Profile, error) {
	logger.Debug("Finding all profiles in database")

	var profiles []model.Profile
	if err := r.db.Preload("User").Find(&profiles).Error; err != nil {
		logger.Error("Failed to find profiles in database", err)
		return nil, err
	}

	logger.Debug("Profiles found in database", map[string]interface{}{
		"count": len(profiles),
	})
	return profiles, nil
}

func (r *profileRepository) FindByUsername(username string) (*model.Profile, error) {
	logger.Debug("Finding profile by username in database", map[string]interface{}{
		"username": username,
	})

	var profile model.Profile
	userIDs := r.db.Model(&model.User{}).Select("id").Where("username = ?", username)
	err := r.db.Preload("User").
		Where("user_id IN (?)", userIDs).
		First(&profile).Error
	if err != nil {
		logLookupFailure("profile", username, err)
		return nil, err
	}

	logger.Debug("Profile found by username in database", map[string]interface{}{
		"profile_id": profile.ID,
		"user_id":    profile.UserID,
	})
	return &profile, nil
}

func (r *profileRepository) Delete(id uint) error {
	logger.Debug("Deleting profile from database", map[string]interface{}{
		"profile_id": id,
	})

	result := r.db.Delete(&model.Profile{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete profile from database", result.Error, map[string]interface{}{
			"profile_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Profile{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count profiles", err)
		return 0, err
	}
	return count, nil
}
