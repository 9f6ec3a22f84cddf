package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/letsorder/internal/domain/order"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Placement
// --------------------------------------------------

func (r *OrderGormRepository) FindTableByCode(
	ctx context.Context,
	code string,
) (*models.Table, error) {
	return findTableByCode(r.db.WithContext(ctx), code)
}

func (r *OrderGormRepository) FindOrderableItem(
	ctx context.Context,
	restaurantID string,
	itemID string,
) (*models.MenuItem, error) {

	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		Select("menu_items.*").
		Joins("JOIN menu_sections ON menu_sections.id = menu_items.section_id").
		Where(
			"menu_items.id = ? AND menu_sections.restaurant_id = ? AND menu_items.available = ?",
			itemID, restaurantID, true,
		).
		First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// CreateOrder is a single INSERT; the lines travel inside the row.
func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

// --------------------------------------------------
// Query
// --------------------------------------------------

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Table.Restaurant").
		Where("id = ?", id).
		First(&o).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
	f order.ListFilter,
) ([]models.Order, error) {

	q := r.db.WithContext(ctx).
		Preload("Table.Restaurant").
		Select("orders.*").
		Joins("JOIN tables ON tables.id = orders.table_id")

	if f.RestaurantID != "" {
		q = q.Where("tables.restaurant_id = ?", f.RestaurantID)
	}
	if f.TableID != "" {
		q = q.Where("orders.table_id = ?", f.TableID)
	}
	if !f.From.IsZero() {
		q = q.Where("orders.created_at >= ?", f.From.UTC())
	}
	if !f.To.IsZero() {
		q = q.Where("orders.created_at < ?", f.To.UTC())
	}

	var orders []models.Order
	if err := q.Order("orders.created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) MenuItemNames(
	ctx context.Context,
	ids []string,
) (map[string]string, error) {

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&items).Error; err != nil {
		return nil, err
	}

	for _, it := range items {
		names[it.ID] = it.Name
	}
	return names, nil
}

func (r *OrderGormRepository) TableBelongsTo(
	ctx context.Context,
	restaurantID string,
	tableID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Status
// --------------------------------------------------

func (r *OrderGormRepository) UpdateStatusGuard(
	ctx context.Context,
	orderID string,
	from order.Status,
	to order.Status,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

var _ order.Repository = (*OrderGormRepository)(nil)
