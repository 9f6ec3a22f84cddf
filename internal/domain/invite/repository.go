package invite

import (
	"context"
	"time"

	"github.com/BruksfildServices01/letsorder/internal/models"
)

type Repository interface {
	// -------- Issue --------
	IsManagerByEmail(
		ctx context.Context,
		restaurantID string,
		email string,
	) (bool, error)

	HasActiveInvite(
		ctx context.Context,
		restaurantID string,
		email string,
		now time.Time,
	) (bool, error)

	CreateInvite(
		ctx context.Context,
		inv *models.ManagerInvite,
	) error

	// -------- Redeem --------
	// FindActiveInvite returns domain.ErrNotFound for unknown tokens and
	// for invites that expired at or before now.
	FindActiveInvite(
		ctx context.Context,
		restaurantID string,
		token string,
		now time.Time,
	) (*models.ManagerInvite, error)

	// Transaction runs fn in a single database transaction. Returning an
	// error from fn rolls back every write made through tx.
	Transaction(
		ctx context.Context,
		fn func(tx RedeemTx) error,
	) error
}

// RedeemTx is the set of writes that make up one redemption.
type RedeemTx interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	IsManager(ctx context.Context, restaurantID, userID string) (bool, error)
	AddManager(ctx context.Context, m *models.RestaurantManager) error

	// ConsumeInvite deletes the invite and reports whether this call
	// removed it. false means another redemption got there first.
	ConsumeInvite(ctx context.Context, inviteID string) (bool, error)
}
