package service

import (
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
)

// Summary counts the stored records per kind.
type Summary struct {
	Addresses int64 `json:"addresses"`
	Lettings  int64 `json:"lettings"`
	Users     int64 `json:"users"`
	Profiles  int64 `json:"profiles"`
}

type AdminService interface {
	GetSummary() (*Summary, error)
}

type adminService struct {
	addressRepo repository.AddressRepository
	lettingRepo repository.LettingRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewAdminService(
	addressRepo repository.AddressRepository,
	lettingRepo repository.LettingRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) AdminService {
	return &adminService{
		addressRepo: addressRepo,
		lettingRepo: lettingRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *adminService) GetSummary() (*Summary, error) {
	var (
		summary Summary
		err     error
	)
	if summary.Addresses, err = s.addressRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Lettings, err = s.lettingRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Users, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Profiles, err = s.profileRepo.Count(); err != nil {
		return nil, err
	}

	logger.Debug("Admin summary computed", map[string]interface{}{
		"lettings": summary.Lettings,
		"profiles": summary.Profiles,
	})
	return &summary, nil
}
