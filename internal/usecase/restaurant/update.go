package restaurant

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainrestaurant "github.com/BruksfildServices01/letsorder/internal/domain/restaurant"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type Update struct {
	repo  domainrestaurant.Repository
	authz access.Authorizer
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domainrestaurant.Repository,
	authz access.Authorizer,
	audit *audit.Dispatcher,
) *Update {
	return &Update{repo: repo, authz: authz, audit: audit}
}

func (uc *Update) Execute(
	ctx context.Context,
	userID string,
	restaurantID string,
	in Details,
) (*models.Restaurant, error) {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilitySuperAdmin); err != nil {
		return nil, err
	}

	if in.Name == nil && in.Address == nil && in.EstablishmentYear == nil && in.GoogleMapsLink == nil {
		return nil, httperr.ErrValidation("no_fields", "No fields to update")
	}

	r, err := uc.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errRestaurantNotFound
		}
		return nil, err
	}

	if err := apply(r, in); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRestaurant(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: r.ID,
		UserID:       &userID,
		Action:       "restaurant_updated",
		Entity:       "restaurant",
		EntityID:     &r.ID,
	})

	return r, nil
}
