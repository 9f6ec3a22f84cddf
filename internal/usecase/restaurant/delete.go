package restaurant

import (
	"context"

	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainrestaurant "github.com/BruksfildServices01/letsorder/internal/domain/restaurant"
)

type Delete struct {
	repo  domainrestaurant.Repository
	authz access.Authorizer
}

func NewDelete(repo domainrestaurant.Repository, authz access.Authorizer) *Delete {
	return &Delete{repo: repo, authz: authz}
}

// Execute removes the restaurant with its managers, invites, tables, menu
// and orders. Its audit trail is kept.
func (uc *Delete) Execute(ctx context.Context, userID, restaurantID string) error {
	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilitySuperAdmin); err != nil {
		return err
	}

	deleted, err := uc.repo.DeleteRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !deleted {
		return errRestaurantNotFound
	}
	return nil
}
