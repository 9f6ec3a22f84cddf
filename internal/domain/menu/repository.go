package menu

import (
	"context"

	"github.com/BruksfildServices01/letsorder/internal/models"
)

// Position is one entry of a bulk reorder.
type Position struct {
	ID           string
	DisplayOrder int
}

type Repository interface {
	// -------- Sections --------
	CreateSection(
		ctx context.Context,
		s *models.MenuSection,
	) error

	GetSection(
		ctx context.Context,
		restaurantID string,
		sectionID string,
	) (*models.MenuSection, error)

	SaveSection(
		ctx context.Context,
		s *models.MenuSection,
	) error

	// DeleteSection removes the section and its items together.
	DeleteSection(
		ctx context.Context,
		restaurantID string,
		sectionID string,
	) (bool, error)

	// ReorderSections applies every position or none. false means some id
	// is not a section of restaurantID.
	ReorderSections(
		ctx context.Context,
		restaurantID string,
		positions []Position,
	) (bool, error)

	// ListSections returns sections ordered by display_order with their
	// items preloaded in display order.
	ListSections(
		ctx context.Context,
		restaurantID string,
		onlyAvailable bool,
	) ([]models.MenuSection, error)

	// -------- Items --------
	CreateItem(
		ctx context.Context,
		item *models.MenuItem,
	) error

	// GetItem only finds items whose section belongs to restaurantID.
	GetItem(
		ctx context.Context,
		restaurantID string,
		itemID string,
	) (*models.MenuItem, error)

	SaveItem(
		ctx context.Context,
		item *models.MenuItem,
	) error

	DeleteItem(
		ctx context.Context,
		itemID string,
	) (bool, error)

	// ReorderItems applies every position or none. false means some id is
	// not an item of sectionID.
	ReorderItems(
		ctx context.Context,
		sectionID string,
		positions []Position,
	) (bool, error)

	// -------- Public --------
	FindTableByCode(
		ctx context.Context,
		code string,
	) (*models.Table, error)

	GetRestaurant(
		ctx context.Context,
		id string,
	) (*models.Restaurant, error)
}
