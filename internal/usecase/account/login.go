package account

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/BruksfildServices01/letsorder/internal/domain"
	domainaccount "github.com/BruksfildServices01/letsorder/internal/domain/account"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/validators"
)

var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid email or password")

type Login struct {
	repo   domainaccount.Repository
	hasher domainaccount.PasswordHasher
	tokens domainaccount.TokenIssuer

	dummyOnce sync.Once
	dummy     string
}

func NewLogin(
	repo domainaccount.Repository,
	hasher domainaccount.PasswordHasher,
	tokens domainaccount.TokenIssuer,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.repo.FindUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.burnVerify(password)
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	ok, err := uc.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

// burnVerify spends the same argon2 work as a real check so unknown emails
// answer in the same time as wrong passwords.
func (uc *Login) burnVerify(password string) {
	uc.dummyOnce.Do(func() {
		h, err := uc.hasher.Hash("letsorder-unknown-account")
		if err != nil {
			log.Printf("login: dummy hash: %v", err)
			return
		}
		uc.dummy = h
	})
	if uc.dummy != "" {
		_, _ = uc.hasher.Verify(password, uc.dummy)
	}
}
