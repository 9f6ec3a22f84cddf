package order

import (
	"context"
	"time"

	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainorder "github.com/BruksfildServices01/letsorder/internal/domain/order"
	"github.com/BruksfildServices01/letsorder/internal/dto"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/timezone"
)

type ListOrders struct {
	repo  domainorder.Repository
	authz access.Authorizer

	tz  string
	now func() time.Time
}

// NewListOrders reads "today" as the calendar day in tz.
func NewListOrders(
	repo domainorder.Repository,
	authz access.Authorizer,
	tz string,
) *ListOrders {
	return &ListOrders{
		repo:  repo,
		authz: authz,
		tz:    tz,
		now:   time.Now,
	}
}

// Restaurant lists every order of the restaurant, newest first.
func (uc *ListOrders) Restaurant(
	ctx context.Context,
	userID string,
	restaurantID string,
) ([]dto.OrderDetailDTO, error) {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}
	return uc.list(ctx, domainorder.ListFilter{RestaurantID: restaurantID})
}

func (uc *ListOrders) Today(
	ctx context.Context,
	userID string,
	restaurantID string,
) ([]dto.OrderDetailDTO, error) {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}

	from, to := timezone.DayBounds(uc.now(), uc.tz)
	return uc.list(ctx, domainorder.ListFilter{
		RestaurantID: restaurantID,
		From:         from,
		To:           to,
	})
}

func (uc *ListOrders) Table(
	ctx context.Context,
	userID string,
	restaurantID string,
	tableID string,
) ([]dto.OrderDetailDTO, error) {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}

	ok, err := uc.repo.TableBelongsTo(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrNotFound("table_not_found", "Table not found")
	}

	return uc.list(ctx, domainorder.ListFilter{
		RestaurantID: restaurantID,
		TableID:      tableID,
	})
}

func (uc *ListOrders) list(ctx context.Context, f domainorder.ListFilter) ([]dto.OrderDetailDTO, error) {
	orders, err := uc.repo.ListOrders(ctx, f)
	if err != nil {
		return nil, err
	}
	return enrich(ctx, uc.repo, orders)
}
