package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/letsorder/internal/domain/table"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type TableGormRepository struct {
	db *gorm.DB
}

func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) CreateTable(
	ctx context.Context,
	t *models.Table,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error
}

func (r *TableGormRepository) ListTables(
	ctx context.Context,
	restaurantID string,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableGormRepository) GetTable(
	ctx context.Context,
	restaurantID string,
	tableID string,
) (*models.Table, error) {

	var t models.Table
	if err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
		First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *TableGormRepository) RenameTable(
	ctx context.Context,
	restaurantID string,
	tableID string,
	name string,
) (bool, error) {
	return r.updateColumn(ctx, restaurantID, tableID, "name", name)
}

func (r *TableGormRepository) UpdateTableCode(
	ctx context.Context,
	restaurantID string,
	tableID string,
	code string,
) (bool, error) {
	return r.updateColumn(ctx, restaurantID, tableID, "unique_code", code)
}

func (r *TableGormRepository) updateColumn(
	ctx context.Context,
	restaurantID string,
	tableID string,
	column string,
	value any,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
		Update(column, value)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteTable also removes the table's orders.
func (r *TableGormRepository) DeleteTable(
	ctx context.Context,
	restaurantID string,
	tableID string,
) (bool, error) {

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Table{}).
			Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		if err := tx.Where("table_id = ?", tableID).Delete(&models.Order{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", tableID).Delete(&models.Table{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

var _ table.Repository = (*TableGormRepository)(nil)
