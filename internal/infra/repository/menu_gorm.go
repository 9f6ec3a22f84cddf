package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/letsorder/internal/domain/menu"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type MenuGormRepository struct {
	db *gorm.DB
}

func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

// --------------------------------------------------
// Sections
// --------------------------------------------------

func (r *MenuGormRepository) CreateSection(
	ctx context.Context,
	s *models.MenuSection,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *MenuGormRepository) GetSection(
	ctx context.Context,
	restaurantID string,
	sectionID string,
) (*models.MenuSection, error) {

	var s models.MenuSection
	if err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", sectionID, restaurantID).
		First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *MenuGormRepository) SaveSection(
	ctx context.Context,
	s *models.MenuSection,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *MenuGormRepository) DeleteSection(
	ctx context.Context,
	restaurantID string,
	sectionID string,
) (bool, error) {

	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.MenuSection{}).
			Select("id").
			Where("id = ? AND restaurant_id = ?", sectionID, restaurantID)

		if err := tx.Where("section_id IN (?)", owned).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND restaurant_id = ?", sectionID, restaurantID).Delete(&models.MenuSection{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// errPositionMiss aborts a reorder transaction when an id does not match.
var errPositionMiss = errors.New("reorder: unknown id")

func (r *MenuGormRepository) ReorderSections(
	ctx context.Context,
	restaurantID string,
	positions []menu.Position,
) (bool, error) {
	return reorder(r.db.WithContext(ctx), &models.MenuSection{}, "restaurant_id", restaurantID, positions)
}

func reorder(db *gorm.DB, model any, scopeColumn, scopeID string, positions []menu.Position) (bool, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, p := range positions {
			res := tx.Model(model).
				Where("id = ? AND "+scopeColumn+" = ?", p.ID, scopeID).
				Update("display_order", p.DisplayOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errPositionMiss
			}
		}
		return nil
	})
	if errors.Is(err, errPositionMiss) {
		return false, nil
	}
	return err == nil, err
}

func (r *MenuGormRepository) ListSections(
	ctx context.Context,
	restaurantID string,
	onlyAvailable bool,
) ([]models.MenuSection, error) {

	var sections []models.MenuSection
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			if onlyAvailable {
				db = db.Where("available = ?", true)
			}
			return db.Order("display_order ASC, created_at ASC")
		}).
		Where("restaurant_id = ?", restaurantID).
		Order("display_order ASC, created_at ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// --------------------------------------------------
// Items
// --------------------------------------------------

func (r *MenuGormRepository) CreateItem(
	ctx context.Context,
	item *models.MenuItem,
) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *MenuGormRepository) GetItem(
	ctx context.Context,
	restaurantID string,
	itemID string,
) (*models.MenuItem, error) {

	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		Select("menu_items.*").
		Joins("JOIN menu_sections ON menu_sections.id = menu_items.section_id").
		Where("menu_items.id = ? AND menu_sections.restaurant_id = ?", itemID, restaurantID).
		First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *MenuGormRepository) SaveItem(
	ctx context.Context,
	item *models.MenuItem,
) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *MenuGormRepository) DeleteItem(
	ctx context.Context,
	itemID string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&models.MenuItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *MenuGormRepository) ReorderItems(
	ctx context.Context,
	sectionID string,
	positions []menu.Position,
) (bool, error) {
	return reorder(r.db.WithContext(ctx), &models.MenuItem{}, "section_id", sectionID, positions)
}

// --------------------------------------------------
// Public
// --------------------------------------------------

func (r *MenuGormRepository) FindTableByCode(
	ctx context.Context,
	code string,
) (*models.Table, error) {
	return findTableByCode(r.db.WithContext(ctx), code)
}

func (r *MenuGormRepository) GetRestaurant(
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

func findTableByCode(db *gorm.DB, code string) (*models.Table, error) {
	var t models.Table
	if err := db.Where("unique_code = ?", code).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

var _ menu.Repository = (*MenuGormRepository)(nil)
