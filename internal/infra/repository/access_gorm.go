package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type AccessGormRepository struct {
	db *gorm.DB
}

func NewAccessGormRepository(db *gorm.DB) *AccessGormRepository {
	return &AccessGormRepository{db: db}
}

func (r *AccessGormRepository) HasCapability(
	ctx context.Context,
	restaurantID string,
	userID string,
	capability access.Capability,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.RestaurantManager{}).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID)

	switch capability {
	case access.CapabilityMember:
	case access.CapabilitySuperAdmin:
		q = q.Where("role = ?", models.RoleSuperAdmin)
	case access.CapabilityManageMenu:
		q = q.Where("can_manage_menu = ?", true)
	default:
		return false, fmt.Errorf("unknown capability %d", capability)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ access.Repository = (*AccessGormRepository)(nil)
