package invite

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain"
	"github.com/BruksfildServices01/letsorder/internal/domain/account"
	domaininvite "github.com/BruksfildServices01/letsorder/internal/domain/invite"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

// Expired and unknown tokens share one message so callers cannot tell
// which tokens ever existed.
var errInvalidInvite = httperr.ErrValidation("invalid_invite", "invalid or expired invite token")

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RedeemInput struct {
	RestaurantID string
	Token        string

	Email    string
	Phone    *string
	Password string
}

type RedeemResult struct {
	Token string
	User  *models.User
}

// ======================================================
// USE CASE
// ======================================================

type Redeem struct {
	repo   domaininvite.Repository
	hasher account.PasswordHasher
	tokens account.TokenIssuer
	audit  *audit.Dispatcher

	now func() time.Time
}

func NewRedeem(
	repo domaininvite.Repository,
	hasher account.PasswordHasher,
	tokens account.TokenIssuer,
	audit *audit.Dispatcher,
) *Redeem {
	return &Redeem{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Redeem) Execute(ctx context.Context, in RedeemInput) (*RedeemResult, error) {
	// --------------------------------------------------
	// 1. Invite lookup
	// --------------------------------------------------
	now := uc.now()
	inv, err := uc.repo.FindActiveInvite(ctx, in.RestaurantID, in.Token, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidInvite
		}
		return nil, err
	}
	if !domaininvite.Usable(inv, now) {
		return nil, errInvalidInvite
	}

	// --------------------------------------------------
	// 2. The invite is bound to one email
	// --------------------------------------------------
	if in.Email != inv.Email {
		return nil, httperr.ErrValidation("email_mismatch", "Email does not match the invite")
	}

	// --------------------------------------------------
	// 3. Resolve user, grant, consume: all or nothing
	// --------------------------------------------------
	var user *models.User
	err = uc.repo.Transaction(ctx, func(tx domaininvite.RedeemTx) error {
		u, err := uc.resolveUser(ctx, tx, inv, in)
		if err != nil {
			return err
		}

		grant := &models.RestaurantManager{
			RestaurantID:  inv.RestaurantID,
			UserID:        u.ID,
			Role:          models.RoleManager,
			CanManageMenu: inv.CanManageMenu,
		}
		if err := tx.AddManager(ctx, grant); err != nil {
			if httperr.IsUniqueViolation(err) {
				return errAlreadyManager
			}
			return err
		}

		consumed, err := tx.ConsumeInvite(ctx, inv.ID)
		if err != nil {
			return err
		}
		if !consumed {
			// a concurrent redemption won; undo our grant
			return errInvalidInvite
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: inv.RestaurantID,
		UserID:       &user.ID,
		Action:       "manager_joined",
		Entity:       "invite",
		EntityID:     &inv.ID,
	})

	return &RedeemResult{Token: token, User: user}, nil
}

var errAlreadyManager = httperr.ErrConflict("already_manager", "User is already a manager of this restaurant")

// resolveUser reuses the account registered under the invite's email after
// checking its password, or creates one.
func (uc *Redeem) resolveUser(
	ctx context.Context,
	tx domaininvite.RedeemTx,
	inv *models.ManagerInvite,
	in RedeemInput,
) (*models.User, error) {

	existing, err := tx.FindUserByEmail(ctx, inv.Email)
	switch {
	case err == nil:
		isManager, err := tx.IsManager(ctx, inv.RestaurantID, existing.ID)
		if err != nil {
			return nil, err
		}
		if isManager {
			return nil, errAlreadyManager
		}

		ok, err := uc.hasher.Verify(in.Password, existing.PasswordHash)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrUnauthorized("invalid_credentials", "Invalid email or password")
		}
		return existing, nil

	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	if len(in.Password) < account.MinPasswordLength {
		return nil, httperr.ErrValidation("weak_password", "Password must be at least 8 characters")
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        inv.Email,
		PasswordHash: hash,
	}
	if in.Phone != nil {
		if p := strings.TrimSpace(*in.Phone); p != "" {
			u.Phone = &p
		}
	}
	if err := tx.CreateUser(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			// a concurrent redemption created the account and holds the invite
			return nil, errInvalidInvite
		}
		return nil, err
	}
	return u, nil
}
