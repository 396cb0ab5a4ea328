package repository

import (
	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
	"gorm.io/gorm"
)

type LettingRepository interface {
	Create(letting *model.Letting) error
	FindAll() ([]model.Letting, error)
	FindByID(id uint) (*model.Letting, error)
	Delete(id uint) error
	Count() (int64, error)
}

type lettingRepository struct {
	db *gorm.DB
}

func NewLettingRepository(db *gorm.DB) LettingRepository {
	return &lettingRepository{db: db}
}

// Create stores the letting and, when it is not saved yet, its address,
// in a single transaction.
func (r *lettingRepository) Create(letting *model.Letting) error {
	logger.Debug("Creating letting in database", map[string]interface{}{
		"title":      letting.Title,
		"address_id": letting.AddressID,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := letting.Validate(); err != nil {
			return err
		}
		if letting.AddressID == 0 && letting.Address.ID == 0 {
			if err := tx.Create(&letting.Address).Error; err != nil {
				return err
			}
		}
		if letting.Address.ID != 0 {
			letting.AddressID = letting.Address.ID
		}
		return tx.Omit("Address").Create(letting).Error
	})
	if err != nil {
		logger.Error("Failed to create letting in database", err, map[string]interface{}{
			"title": letting.Title,
		})
		return err
	}

	logger.Debug("Letting created in database", map[string]interface{}{
		"letting_id": letting.ID,
		"address_id": letting.AddressID,
	})
	return nil
}

func (r *lettingRepository) FindAll() ([]model.Letting, error) {
	logger.Debug("Finding all lettings in database")

	var lettings []model.Letting
	if err := r.db.Preload("Address").Find(&lettings).Error; err != nil {
		logger.Error("Failed to find lettings in database", err)
		return nil, err
	}

	logger.Debug("Lettings found in database", map[string]interface{}{
		"count": len(lettings),
	})
	return lettings, nil
}

func (r *lettingRepository) FindByID(id uint) (*model.Letting, error) {
	logger.Debug("Finding letting by ID in database", map[string]interface{}{
		"letting_id": id,
	})

	var letting model.Letting
	if err := r.db.Preload("Address").First(&letting, id).Error; err != nil {
		logLookupFailure("letting", id, err)
		return nil, err
	}

	logger.Debug("Letting found by ID in database", map[string]interface{}{
		"letting_id": letting.ID,
		"title":      letting.Title,
	})
	return &letting, nil
}

// Delete removes the letting together with the address it owns.
func (r *lettingRepository) Delete(id uint) error {
	logger.Debug("Deleting letting from database", map[string]interface{}{
		"letting_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var letting model.Letting
		if err := tx.First(&letting, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&letting).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Address{}, letting.AddressID).Error
	})
	if err != nil {
		logLookupFailure("letting", id, err)
		return err
	}

	logger.Debug("Letting deleted from database", map[string]interface{}{
		"letting_id": id,
	})
	return nil
}

func (r *lettingRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Letting{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count lettings", err)
		return 0, err
	}
	return count, nil
}
