package table

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domaintable "github.com/BruksfildServices01/letsorder/internal/domain/table"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

var errTableNotFound = httperr.ErrNotFound("table_not_found", "Table not found")

// Service groups the table operations of one restaurant. Writes need the
// menu capability, reads only membership.
type Service struct {
	repo  domaintable.Repository
	authz access.Authorizer
	audit *audit.Dispatcher

	baseURL string
	newCode func() (string, error)
}

func NewService(
	repo domaintable.Repository,
	authz access.Authorizer,
	audit *audit.Dispatcher,
	publicBaseURL string,
) *Service {
	return &Service{
		repo:    repo,
		authz:   authz,
		audit:   audit,
		baseURL: publicBaseURL,
		newCode: domaintable.NewCode,
	}
}

// ======================================================
// CREATE
// ======================================================

func (s *Service) Create(
	ctx context.Context,
	userID string,
	restaurantID string,
	name string,
) (*models.Table, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return nil, err
	}

	name, err := validName(name)
	if err != nil {
		return nil, err
	}

	t := &models.Table{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         name,
	}

	err = s.withFreshCode(func(code string) error {
		t.UniqueCode = code
		return s.repo.CreateTable(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(restaurantID, userID, "table_created", t.ID)
	return t, nil
}

// ======================================================
// READ
// ======================================================

func (s *Service) List(
	ctx context.Context,
	userID string,
	restaurantID string,
) ([]models.Table, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}
	return s.repo.ListTables(ctx, restaurantID)
}

// QRURL returns the public ordering link for the table. Rendering it as
// an image is left to the client.
func (s *Service) QRURL(
	ctx context.Context,
	userID string,
	restaurantID string,
	tableID string,
) (string, *models.Table, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return "", nil, err
	}

	t, err := s.get(ctx, restaurantID, tableID)
	if err != nil {
		return "", nil, err
	}
	return domaintable.QRURL(s.baseURL, restaurantID, t.UniqueCode), t, nil
}

// ======================================================
// UPDATE
// ======================================================

func (s *Service) Rename(
	ctx context.Context,
	userID string,
	restaurantID string,
	tableID string,
	name string,
) (*models.Table, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return nil, err
	}

	name, err := validName(name)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.RenameTable(ctx, restaurantID, tableID, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errTableNotFound
	}
	return s.get(ctx, restaurantID, tableID)
}

// RefreshCode replaces the table's public code, invalidating printed QR
// codes that carry the old one.
func (s *Service) RefreshCode(
	ctx context.Context,
	userID string,
	restaurantID string,
	tableID string,
) (*models.Table, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return nil, err
	}

	if _, err := s.get(ctx, restaurantID, tableID); err != nil {
		return nil, err
	}

	err := s.withFreshCode(func(code string) error {
		ok, err := s.repo.UpdateTableCode(ctx, restaurantID, tableID, code)
		if err != nil {
			return err
		}
		if !ok {
			return errTableNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(restaurantID, userID, "table_code_refreshed", tableID)
	return s.get(ctx, restaurantID, tableID)
}

// ======================================================
// DELETE
// ======================================================

func (s *Service) Delete(
	ctx context.Context,
	userID string,
	restaurantID string,
	tableID string,
) error {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return err
	}

	ok, err := s.repo.DeleteTable(ctx, restaurantID, tableID)
	if err != nil {
		return err
	}
	if !ok {
		return errTableNotFound
	}

	s.dispatch(restaurantID, userID, "table_deleted", tableID)
	return nil
}

// ======================================================
// HELPERS
// ======================================================

// withFreshCode retries write with a new code while it collides with an
// existing one.
func (s *Service) withFreshCode(write func(code string) error) error {
	for attempt := 0; attempt < domaintable.MaxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return err
		}

		err = write(code)
		if err == nil {
			return nil
		}
		if !httperr.IsUniqueViolation(err) {
			return err
		}
	}
	return fmt.Errorf("table code: no unique code after %d attempts", domaintable.MaxCodeAttempts)
}

func (s *Service) get(ctx context.Context, restaurantID, tableID string) (*models.Table, error) {
	t, err := s.repo.GetTable(ctx, restaurantID, tableID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errTableNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) dispatch(restaurantID, userID, action, tableID string) {
	s.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       &userID,
		Action:       action,
		Entity:       "table",
		EntityID:     &tableID,
	})
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return "", httperr.ErrValidation("invalid_name", "Table name must be 1 to 100 characters")
	}
	return name, nil
}
