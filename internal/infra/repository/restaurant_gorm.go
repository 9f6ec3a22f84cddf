package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/letsorder/internal/domain/restaurant"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

// --------------------------------------------------
// Restaurant
// --------------------------------------------------

func (r *RestaurantGormRepository) CreateWithOwner(
	ctx context.Context,
	rest *models.Restaurant,
	ownerID string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rest).Error; err != nil {
			return err
		}

		owner := models.RestaurantManager{
			RestaurantID:  rest.ID,
			UserID:        ownerID,
			Role:          models.RoleSuperAdmin,
			CanManageMenu: true,
		}
		return tx.Omit(clause.Associations).Create(&owner).Error
	})
}

func (r *RestaurantGormRepository) GetRestaurant(
	ctx context.Context,
	id string,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rest).Error; err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) UpdateRestaurant(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	return r.db.WithContext(ctx).Save(rest).Error
}

// DeleteRestaurant removes the restaurant and everything scoped to it.
// Children are deleted explicitly so the result does not depend on the
// driver enforcing foreign keys.
func (r *RestaurantGormRepository) DeleteRestaurant(
	ctx context.Context,
	id string,
) (bool, error) {

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := tx.Model(&models.Table{}).Select("id").Where("restaurant_id = ?", id)
		sections := tx.Model(&models.MenuSection{}).Select("id").Where("restaurant_id = ?", id)

		children := []struct {
			model any
			query string
			arg   any
		}{
			{&models.Order{}, "table_id IN (?)", tables},
			{&models.MenuItem{}, "section_id IN (?)", sections},
			{&models.MenuSection{}, "restaurant_id = ?", id},
			{&models.Table{}, "restaurant_id = ?", id},
			{&models.ManagerInvite{}, "restaurant_id = ?", id},
			{&models.RestaurantManager{}, "restaurant_id = ?", id},
		}
		for _, c := range children {
			if err := tx.Where(c.query, c.arg).Delete(c.model).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(&models.Restaurant{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *RestaurantGormRepository) ListForUser(
	ctx context.Context,
	userID string,
) ([]restaurant.Membership, error) {

	var rows []struct {
		models.Restaurant
		Role          string
		CanManageMenu bool
	}

	if err := r.db.WithContext(ctx).
		Table("restaurants").
		Select("restaurants.*, restaurant_managers.role, restaurant_managers.can_manage_menu").
		Joins("JOIN restaurant_managers ON restaurant_managers.restaurant_id = restaurants.id").
		Where("restaurant_managers.user_id = ?", userID).
		Order("restaurants.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]restaurant.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, restaurant.Membership{
			Restaurant:    row.Restaurant,
			Role:          row.Role,
			CanManageMenu: row.CanManageMenu,
		})
	}
	return out, nil
}

// --------------------------------------------------
// Managers
// --------------------------------------------------

func (r *RestaurantGormRepository) ListManagers(
	ctx context.Context,
	restaurantID string,
) ([]restaurant.Manager, error) {

	var managers []restaurant.Manager
	if err := r.db.WithContext(ctx).
		Table("restaurant_managers").
		Select(
			"restaurant_managers.user_id, users.email, users.phone, "+
				"restaurant_managers.role, restaurant_managers.can_manage_menu, restaurant_managers.created_at",
		).
		Joins("JOIN users ON users.id = restaurant_managers.user_id").
		Where("restaurant_managers.restaurant_id = ?", restaurantID).
		Order("restaurant_managers.created_at ASC").
		Scan(&managers).Error; err != nil {
		return nil, err
	}
	return managers, nil
}

func (r *RestaurantGormRepository) RemoveManager(
	ctx context.Context,
	restaurantID string,
	userID string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		Delete(&models.RestaurantManager{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *RestaurantGormRepository) SetMenuPermission(
	ctx context.Context,
	restaurantID string,
	userID string,
	canManageMenu bool,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.RestaurantManager{}).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		Update("can_manage_menu", canManageMenu)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ restaurant.Repository = (*RestaurantGormRepository)(nil)
