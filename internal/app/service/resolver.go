package service

import (
	"errors"

	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
	"gorm.io/gorm"
)

// Resolve looks up a single record of kind by its natural key.
// A miss is reported as *errors.NotFoundError carrying the key; any other
// store failure is returned unchanged. Resolve never retries.
func Resolve[K comparable, R any](kind string, key K, find func(K) (*R, error)) (*R, error) {
	record, err := find(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Kind: kind, Key: key}
		}
		return nil, err
	}
	if record == nil {
		return nil, &apperrors.NotFoundError{Kind: kind, Key: key}
	}
	return record, nil
}
