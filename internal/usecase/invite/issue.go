package invite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domain "github.com/BruksfildServices01/letsorder/internal/domain/invite"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
	"github.com/BruksfildServices01/letsorder/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type IssueInput struct {
	RestaurantID  string
	Email         string
	CanManageMenu bool
}

// ======================================================
// USE CASE
// ======================================================

type Issue struct {
	repo  domain.Repository
	authz access.Authorizer
	audit *audit.Dispatcher

	ttl time.Duration
	now func() time.Time
}

func NewIssue(
	repo domain.Repository,
	authz access.Authorizer,
	audit *audit.Dispatcher,
	ttl time.Duration,
) *Issue {
	if ttl <= 0 {
		ttl = domain.DefaultTTL
	}
	return &Issue{
		repo:  repo,
		authz: authz,
		audit: audit,
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Issue) Execute(
	ctx context.Context,
	userID string,
	in IssueInput,
) (*models.ManagerInvite, error) {

	// --------------------------------------------------
	// Only a super_admin may invite
	// --------------------------------------------------
	if err := uc.authz.Authorize(ctx, userID, in.RestaurantID, access.CapabilitySuperAdmin); err != nil {
		return nil, err
	}

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrValidation("invalid_email", "Invalid email address")
	}

	// --------------------------------------------------
	// Conflicts
	// --------------------------------------------------
	isManager, err := uc.repo.IsManagerByEmail(ctx, in.RestaurantID, email)
	if err != nil {
		return nil, err
	}
	if isManager {
		return nil, httperr.ErrConflict("already_manager", "User is already a manager of this restaurant")
	}

	now := uc.now()
	pending, err := uc.repo.HasActiveInvite(ctx, in.RestaurantID, email, now)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, httperr.ErrConflict("invite_pending", "An active invite already exists for this email")
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	inv := &models.ManagerInvite{
		ID:            uuid.NewString(),
		RestaurantID:  in.RestaurantID,
		Email:         email,
		CanManageMenu: in.CanManageMenu,
		Token:         uuid.NewString(),
		ExpiresAt:     now.Add(uc.ttl),
	}
	if err := uc.repo.CreateInvite(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: in.RestaurantID,
		UserID:       &userID,
		Action:       "manager_invited",
		Entity:       "invite",
		EntityID:     &inv.ID,
		Metadata:     map[string]any{"email": email, "can_manage_menu": in.CanManageMenu},
	})

	return inv, nil
}
