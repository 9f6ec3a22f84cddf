package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/letsorder/internal/domain"
	domainaccount "github.com/BruksfildServices01/letsorder/internal/domain/account"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type GetMe struct {
	repo domainaccount.Repository
}

func NewGetMe(repo domainaccount.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// token outlived its account
			return nil, httperr.ErrUnauthorized("user_not_found", "User no longer exists")
		}
		return nil, err
	}
	return user, nil
}
