package service

import (
	"errors"

	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
	"gorm.io/gorm"
)

const kindLetting = "letting"

type LettingService interface {
	ListLettings() ([]model.Letting, error)
	GetLetting(id uint) (*model.Letting, error)
	CreateLetting(title string, address model.AddressInput) (*model.Letting, error)
	DeleteLetting(id uint) error
}

type lettingService struct {
	lettingRepo repository.LettingRepository
}

func NewLettingService(lettingRepo repository.LettingRepository) LettingService {
	return &lettingService{
		lettingRepo: lettingRepo,
	}
}

func (s *lettingService) ListLettings() ([]model.Letting, error) {
	lettings, err := s.lettingRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch lettings", err)
		return nil, err
	}

	logger.Debug("Lettings fetched successfully", map[string]interface{}{
		"count": len(lettings),
	})
	return lettings, nil
}

func (s *lettingService) GetLetting(id uint) (*model.Letting, error) {
	return Resolve(kindLetting, id, s.lettingRepo.FindByID)
}

// CreateLetting validates the address fields and the title, then stores
// both. Nothing is written when validation fails.
func (s *lettingService) CreateLetting(title string, input model.AddressInput) (*model.Letting, error) {
	logger.Info("Creating letting", map[string]interface{}{
		"title": title,
	})

	address, err := model.NewAddress(input)
	if err != nil {
		logger.Warn("Invalid letting address", map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
		return nil, err
	}

	letting := &model.Letting{Title: title, Address: *address}
	if err := s.lettingRepo.Create(letting); err != nil {
		logger.Error("Failed to create letting", err, map[string]interface{}{
			"title": title,
		})
		return nil, err
	}

	logger.Info("Letting created successfully", map[string]interface{}{
		"letting_id": letting.ID,
		"address_id": letting.AddressID,
	})
	return letting, nil
}

func (s *lettingService) DeleteLetting(id uint) error {
	logger.Info("Deleting letting", map[string]interface{}{
		"letting_id": id,
	})

	if err := s.lettingRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Kind: kindLetting, Key: id}
		}
		logger.Error("Failed to delete letting", err, map[string]interface{}{
			"letting_id": id,
		})
		return err
	}

	logger.Info("Letting deleted successfully", map[string]interface{}{
		"letting_id": id,
	})
	return nil
}
