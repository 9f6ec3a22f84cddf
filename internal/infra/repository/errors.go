package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/letsorder/internal/domain"
)

// notFound turns gorm's missing-row error into the domain one so use
// cases never import gorm.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
