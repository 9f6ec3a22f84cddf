package restaurant

import (
	"context"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainrestaurant "github.com/BruksfildServices01/letsorder/internal/domain/restaurant"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
)

var errManagerNotFound = httperr.ErrNotFound("manager_not_found", "Manager not found")

// ======================================================
// LIST
// ======================================================

type ListManagers struct {
	repo  domainrestaurant.Repository
	authz access.Authorizer
}

func NewListManagers(repo domainrestaurant.Repository, authz access.Authorizer) *ListManagers {
	return &ListManagers{repo: repo, authz: authz}
}

func (uc *ListManagers) Execute(
	ctx context.Context,
	userID string,
	restaurantID string,
) ([]domainrestaurant.Manager, error) {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}
	return uc.repo.ListManagers(ctx, restaurantID)
}

// ======================================================
// REMOVE
// ======================================================

type RemoveManager struct {
	repo  domainrestaurant.Repository
	authz access.Authorizer
	audit *audit.Dispatcher
}

func NewRemoveManager(
	repo domainrestaurant.Repository,
	authz access.Authorizer,
	audit *audit.Dispatcher,
) *RemoveManager {
	return &RemoveManager{repo: repo, authz: authz, audit: audit}
}

func (uc *RemoveManager) Execute(
	ctx context.Context,
	userID string,
	restaurantID string,
	targetUserID string,
) error {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilitySuperAdmin); err != nil {
		return err
	}
	if targetUserID == userID {
		return httperr.ErrValidation("cannot_remove_self", "You cannot remove yourself")
	}

	removed, err := uc.repo.RemoveManager(ctx, restaurantID, targetUserID)
	if err != nil {
		return err
	}
	if !removed {
		return errManagerNotFound
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       &userID,
		Action:       "manager_removed",
		Entity:       "user",
		EntityID:     &targetUserID,
	})
	return nil
}

// ======================================================
// PERMISSIONS
// ======================================================

type UpdateManagerPermissions struct {
	repo  domainrestaurant.Repository
	authz access.Authorizer
	audit *audit.Dispatcher
}

func NewUpdateManagerPermissions(
	repo domainrestaurant.Repository,
	authz access.Authorizer,
	audit *audit.Dispatcher,
) *UpdateManagerPermissions {
	return &UpdateManagerPermissions{repo: repo, authz: authz, audit: audit}
}

func (uc *UpdateManagerPermissions) Execute(
	ctx context.Context,
	userID string,
	restaurantID string,
	targetUserID string,
	canManageMenu bool,
) error {

	if err := uc.authz.Authorize(ctx, userID, restaurantID, access.CapabilitySuperAdmin); err != nil {
		return err
	}

	updated, err := uc.repo.SetMenuPermission(ctx, restaurantID, targetUserID, canManageMenu)
	if err != nil {
		return err
	}
	if !updated {
		return errManagerNotFound
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       &userID,
		Action:       "manager_permissions_updated",
		Entity:       "user",
		EntityID:     &targetUserID,
		Metadata:     map[string]bool{"can_manage_menu": canManageMenu},
	})
	return nil
}
