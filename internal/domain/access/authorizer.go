package access

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
)

type Repository interface {
	HasCapability(
		ctx context.Context,
		restaurantID string,
		userID string,
		capability Capability,
	) (bool, error)
}

// Authorizer is the single gate every restaurant-scoped use case goes
// through before touching state.
type Authorizer interface {
	Authorize(
		ctx context.Context,
		userID string,
		restaurantID string,
		capability Capability,
	) error
}

// StoreAuthorizer re-reads the grant on every call, so a revoked or
// downgraded manager loses access on the very next request.
type StoreAuthorizer struct {
	repo Repository
}

func NewAuthorizer(repo Repository) *StoreAuthorizer {
	return &StoreAuthorizer{repo: repo}
}

func (a *StoreAuthorizer) Authorize(
	ctx context.Context,
	userID string,
	restaurantID string,
	capability Capability,
) error {
	if userID == "" {
		return httperr.ErrUnauthorized("unauthenticated", "Authentication required")
	}

	ok, err := a.repo.HasCapability(ctx, restaurantID, userID, capability)
	if err != nil {
		return fmt.Errorf("authorize %s: %w", capability, err)
	}
	if ok {
		return nil
	}

	switch capability {
	case CapabilitySuperAdmin:
		return httperr.ErrForbidden("super_admin_required", "Only super admin can perform this action")
	case CapabilityManageMenu:
		return httperr.ErrForbidden("menu_permission_required", "Menu management permission required")
	default:
		return httperr.ErrForbidden("access_denied", "Access denied")
	}
}

var _ Authorizer = (*StoreAuthorizer)(nil)
