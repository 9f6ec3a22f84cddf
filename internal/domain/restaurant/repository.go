package restaurant

import (
	"context"
	"time"

	"github.com/BruksfildServices01/letsorder/internal/models"
)

// Membership is a restaurant seen from one of its managers.
type Membership struct {
	Restaurant    models.Restaurant
	Role          string
	CanManageMenu bool
}

// Manager is a grant joined with the user it belongs to.
type Manager struct {
	UserID        string
	Email         string
	Phone         *string
	Role          string
	CanManageMenu bool
	CreatedAt     time.Time
}

type Repository interface {
	// -------- Restaurant --------
	// CreateWithOwner inserts the restaurant and the owner's super_admin
	// grant in one transaction.
	CreateWithOwner(
		ctx context.Context,
		r *models.Restaurant,
		ownerID string,
	) error

	GetRestaurant(
		ctx context.Context,
		id string,
	) (*models.Restaurant, error)

	UpdateRestaurant(
		ctx context.Context,
		r *models.Restaurant,
	) error

	DeleteRestaurant(
		ctx context.Context,
		id string,
	) (bool, error)

	ListForUser(
		ctx context.Context,
		userID string,
	) ([]Membership, error)

	// -------- Managers --------
	ListManagers(
		ctx context.Context,
		restaurantID string,
	) ([]Manager, error)

	RemoveManager(
		ctx context.Context,
		restaurantID string,
		userID string,
	) (bool, error)

	SetMenuPermission(
		ctx context.Context,
		restaurantID string,
		userID string,
		canManageMenu bool,
	) (bool, error)
}
