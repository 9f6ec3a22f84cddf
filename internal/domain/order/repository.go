package order

import (
	"context"
	"time"

	"github.com/BruksfildServices01/letsorder/internal/models"
)

// ListFilter narrows an order listing. Zero values are ignored.
type ListFilter struct {
	RestaurantID string
	TableID      string
	From         time.Time
	To           time.Time
}

type Repository interface {
	// -------- Placement --------
	FindTableByCode(
		ctx context.Context,
		code string,
	) (*models.Table, error)

	// FindOrderableItem only matches an available item in a section of
	// restaurantID.
	FindOrderableItem(
		ctx context.Context,
		restaurantID string,
		itemID string,
	) (*models.MenuItem, error)

	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Query --------
	// GetOrder preloads Table and Table.Restaurant.
	GetOrder(
		ctx context.Context,
		id string,
	) (*models.Order, error)

	ListOrders(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Order, error)

	// MenuItemNames maps the ids that still exist to their current names.
	MenuItemNames(
		ctx context.Context,
		ids []string,
	) (map[string]string, error)

	TableBelongsTo(
		ctx context.Context,
		restaurantID string,
		tableID string,
	) (bool, error)

	// -------- Status --------
	// UpdateStatusGuard only updates when the stored status still equals
	// from, and reports whether a row changed.
	UpdateStatusGuard(
		ctx context.Context,
		orderID string,
		from Status,
		to Status,
	) (bool, error)
}
