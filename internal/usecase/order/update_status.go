package order

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainorder "github.com/BruksfildServices01/letsorder/internal/domain/order"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type UpdateStatus struct {
	repo  domainorder.Repository
	authz access.Authorizer
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domainorder.Repository,
	authz access.Authorizer,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		authz: authz,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	userID string,
	restaurantID string,
	orderID string,
	status string,
) (*models.Order, error) {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}

	to, ok := domainorder.ParseStatus(status)
	if !ok {
		return nil, httperr.ErrValidation("invalid_status", "Unknown order status")
	}

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errOrderNotFound
		}
		return nil, err
	}
	// orders of other restaurants are invisible here
	if o.Table.RestaurantID != restaurantID {
		return nil, errOrderNotFound
	}

	from := domainorder.Status(o.Status)
	if err := domainorder.CheckTransition(from, to); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateStatusGuard(ctx, o.ID, from, to)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, httperr.ErrConflict("status_changed", "Order status was changed by someone else")
	}
	o.Status = string(to)

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       &userID,
		Action:       "order_status_changed",
		Entity:       "order",
		EntityID:     &o.ID,
		Metadata:     map[string]string{"from": string(from), "to": string(to)},
	})

	return o, nil
}
