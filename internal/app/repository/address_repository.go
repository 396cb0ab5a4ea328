package repository

import (
	"errors"

	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(address *model.Address) error
	FindByID(id uint) (*model.Address, error)
	Delete(id uint) error
	Count() (int64, error)
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *model.Address) error {
	logger.Debug("Creating address in database", map[string]interface{}{
		"number": address.Number,
		"street": address.Street,
		"city":   address.City,
	})

	if err := r.db.Create(address).Error; err != nil {
		logger.Error("Failed to create address in database", err, map[string]interface{}{
			"number": address.Number,
			"street": address.Street,
		})
		return err
	}

	logger.Debug("Address created in database", map[string]interface{}{
		"address_id": address.ID,
	})
	return nil
}

func (r *addressRepository) FindByID(id uint) (*model.Address, error) {
	logger.Debug("Finding address by ID in database", map[string]interface{}{
		"address_id": id,
	})

	var address model.Address
	if err := r.db.First(&address, id).Error; err != nil {
		logLookupFailure("address", id, err)
		return nil, err
	}

	return &address, nil
}

// Delete removes the address. The database cascades the delete to the
// letting that owns it.
func (r *addressRepository) Delete(id uint) error {
	logger.Debug("Deleting address from database", map[string]interface{}{
		"address_id": id,
	})

	result := r.db.Delete(&model.Address{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete address from database", result.Error, map[string]interface{}{
			"address_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Address deleted from database", map[string]interface{}{
		"address_id": id,
	})
	return nil
}

func (r *addressRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Address{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count addresses", err)
		return 0, err
	}
	return count, nil
}

// logLookupFailure keeps misses at debug level; they become 404s upstream.
func logLookupFailure(kind string, key interface{}, err error) {
	fields := map[string]interface{}{
		"kind": kind,
		"key":  key,
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("Record not found in database", fields)
		return
	}
	logger.Error("Failed to query record in database", err, fields)
}
