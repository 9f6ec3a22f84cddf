package restaurant

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/letsorder/internal/domain"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainrestaurant "github.com/BruksfildServices01/letsorder/internal/domain/restaurant"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

var errRestaurantNotFound = httperr.ErrNotFound("restaurant_not_found", "Restaurant not found")

type ListMine struct {
	repo domainrestaurant.Repository
}

func NewListMine(repo domainrestaurant.Repository) *ListMine {
	return &ListMine{repo: repo}
}

func (uc *ListMine) Execute(ctx context.Context, userID string) ([]domainrestaurant.Membership, error) {
	return uc.repo.ListForUser(ctx, userID)
}

type Get struct {
	repo  domainrestaurant.Repository
	authz access.Authorizer
}

func NewGet(repo domainrestaurant.Repository, authz access.Authorizer) *Get {
	return &Get{repo: repo, authz: authz}
}

func (uc *Get) Execute(ctx context.Context, userID, restaurantID string) (*models.Restaurant, error) {
	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}

	r, err := uc.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errRestaurantNotFound
		}
		return nil, err
	}
	return r, nil
}
