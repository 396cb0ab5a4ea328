package service

import (
	"strings"

	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
)

const kindProfile = "profile"

type ProfileService interface {
	ListProfiles() ([]model.Profile, error)
	GetProfile(username string) (*model.Profile, error)
	CreateProfile(username, favoriteCity string) (*model.Profile, error)
	DeleteProfile(username string) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) ListProfiles() ([]model.Profile, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch profiles", err)
		return nil, err
	}

	logger.Debug("Profiles fetched successfully", map[string]interface{}{
		"count": len(profiles),
	})
	return profiles, nil
}

func (s *profileService) GetProfile(username string) (*model.Profile, error) {
	return Resolve(kindProfile, username, s.profileRepo.FindByUsername)
}

// CreateProfile attaches a profile to an existing account.
func (s *profileService) CreateProfile(username, favoriteCity string) (*model.Profile, error) {
	logger.Info("Creating profile", map[string]interface{}{
		"username": username,
	})

	user, err := Resolve(kindUser, username, s.userRepo.FindByUsername)
	if err != nil {
		logger.Warn("Cannot create profile without an account", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	profile := &model.Profile{User: *user, FavoriteCity: strings.TrimSpace(favoriteCity)}
	if err := s.profileRepo.Create(profile); err != nil {
		logger.Error("Failed to create profile", err, map[string]interface{}{
			"username": username,
		})
		return nil, err
	}

	logger.Info("Profile created successfully", map[string]interface{}{
		"profile_id": profile.ID,
		"user_id":    profile.UserID,
	})
	return profile, nil
}

func (s *profileService) DeleteProfile(username string) error {
	profile, err := s.GetProfile(username)
	if err != nil {
		return err
	}

	if err := s.profileRepo.Delete(profile.ID); err != nil {
		logger.Error("Failed to delete profile", err, map[string]interface{}{
			"profile_id": profile.ID,
		})
		return err
	}

	logger.Info("Profile deleted successfully", map[string]interface{}{
		"profile_id": profile.ID,
		"username":   username,
	})
	return nil
}
