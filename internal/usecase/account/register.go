package account

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/letsorder/internal/domain"
	domainaccount "github.com/BruksfildServices01/letsorder/internal/domain/account"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
	"github.com/BruksfildServices01/letsorder/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Email    string
	Phone    *string
	Password string
}

// Session is what register, login and invite redemption hand back.
type Session struct {
	Token string
	User  *models.User
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo   domainaccount.Repository
	hasher domainaccount.PasswordHasher
	tokens domainaccount.TokenIssuer

	// CheckDomain optionally verifies the email domain resolves.
	CheckDomain func(email string) bool
}

func NewRegister(
	repo domainaccount.Repository,
	hasher domainaccount.PasswordHasher,
	tokens domainaccount.TokenIssuer,
) *Register {
	return &Register{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrValidation("invalid_email", "Invalid email address")
	}
	if uc.CheckDomain != nil && !uc.CheckDomain(email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "Email domain does not accept mail")
	}
	if len(in.Password) < domainaccount.MinPasswordLength {
		return nil, httperr.ErrValidation("weak_password", "Password must be at least 8 characters")
	}

	_, err := uc.repo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, httperr.ErrConflict("email_taken", "Email already registered")
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Phone:        trimOptional(in.Phone),
		PasswordHash: hash,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict("email_taken", "Email already registered")
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
