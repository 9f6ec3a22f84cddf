package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainmenu "github.com/BruksfildServices01/letsorder/internal/domain/menu"
	"github.com/BruksfildServices01/letsorder/internal/dto"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

var (
	errSectionNotFound = httperr.ErrNotFound("section_not_found", "Menu section not found")
	errItemNotFound    = httperr.ErrNotFound("menu_item_not_found", "Menu item not found")
	errNoPositions     = httperr.ErrValidation("no_positions", "At least one position is required")
)

// ======================================================
// INPUT
// ======================================================

type SectionInput struct {
	Name         string
	DisplayOrder int
}

// SectionUpdate fields left nil keep their current value.
type SectionUpdate struct {
	Name         *string
	DisplayOrder *int
}

// ItemInput fields left nil keep their current value on update.
type ItemInput struct {
	Name         *string
	Description  *string
	Price        *float64
	Available    *bool
	DisplayOrder *int
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo  domainmenu.Repository
	authz access.Authorizer
	audit *audit.Dispatcher
}

func NewService(
	repo domainmenu.Repository,
	authz access.Authorizer,
	audit *audit.Dispatcher,
) *Service {
	return &Service{repo: repo, authz: authz, audit: audit}
}

// -------- Sections --------

func (s *Service) CreateSection(
	ctx context.Context,
	userID string,
	restaurantID string,
	in SectionInput,
) (*models.MenuSection, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return nil, err
	}

	name, err := validName(in.Name)
	if err != nil {
		return nil, err
	}

	sec := &models.MenuSection{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         name,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.repo.CreateSection(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

// ListSections returns the full menu, unavailable items included.
func (s *Service) ListSections(
	ctx context.Context,
	userID string,
	restaurantID string,
) ([]models.MenuSection, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityMember); err != nil {
		return nil, err
	}
	return s.repo.ListSections(ctx, restaurantID, false)
}

func (s *Service) UpdateSection(
	ctx context.Context,
	userID string,
	restaurantID string,
	sectionID string,
	in SectionUpdate,
) (*models.MenuSection, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return nil, err
	}

	if in.Name == nil && in.DisplayOrder == nil {
		return nil, httperr.ErrValidation("no_fields", "No fields to update")
	}

	sec, err := s.section(ctx, restaurantID, sectionID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := validName(*in.Name)
		if err != nil {
			return nil, err
		}
		sec.Name = name
	}
	if in.DisplayOrder != nil {
		sec.DisplayOrder = *in.DisplayOrder
	}

	if err := s.repo.SaveSection(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

// DeleteSection removes the section with all of its items. Past orders keep
// their snapshots and show those items as unknown.
func (s *Service) DeleteSection(
	ctx context.Context,
	userID string,
	restaurantID string,
	sectionID string,
) error {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return err
	}

	ok, err := s.repo.DeleteSection(ctx, restaurantID, sectionID)
	if err != nil {
		return err
	}
	if !ok {
		return errSectionNotFound
	}

	s.dispatch(restaurantID, userID, "menu_section_deleted", "menu_section", sectionID)
	return nil
}

func (s *Service) ReorderSections(
	ctx context.Context,
	userID string,
	restaurantID string,
	positions []domainmenu.Position,
) error {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return err
	}
	if len(positions) == 0 {
		return errNoPositions
	}

	ok, err := s.repo.ReorderSections(ctx, restaurantID, positions)
	if err != nil {
		return err
	}
	if !ok {
		return errSectionNotFound
	}
	return nil
}

// -------- Items --------

func (s *Service) CreateItem(
	ctx context.Context,
	userID string,
	restaurantID string,
	sectionID string,
	in ItemInput,
) (*models.MenuItem, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return nil, err
	}

	if _, err := s.section(ctx, restaurantID, sectionID); err != nil {
		return nil, err
	}

	if in.Name == nil || in.Price == nil {
		return nil, httperr.ErrValidation("missing_fields", "Name and price are required")
	}

	item := &models.MenuItem{
		ID:        uuid.NewString(),
		SectionID: sectionID,
		Available: true,
	}
	if err := applyItem(item, in); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdateItem(
	ctx context.Context,
	userID string,
	restaurantID string,
	itemID string,
	in ItemInput,
) (*models.MenuItem, error) {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return nil, err
	}

	item, err := s.item(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	if err := applyItem(item, in); err != nil {
		return nil, err
	}
	if err := s.repo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) SetAvailability(
	ctx context.Context,
	userID string,
	restaurantID string,
	itemID string,
	available bool,
) (*models.MenuItem, error) {
	return s.UpdateItem(ctx, userID, restaurantID, itemID, ItemInput{Available: &available})
}

// DeleteItem leaves past orders intact; they show the item as unknown.
func (s *Service) DeleteItem(
	ctx context.Context,
	userID string,
	restaurantID string,
	itemID string,
) error {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return err
	}

	if _, err := s.item(ctx, restaurantID, itemID); err != nil {
		return err
	}

	ok, err := s.repo.DeleteItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return errItemNotFound
	}

	s.dispatch(restaurantID, userID, "menu_item_deleted", "menu_item", itemID)
	return nil
}

// ReorderItems sets display_order for items of one section. An id outside
// the section fails the whole batch.
func (s *Service) ReorderItems(
	ctx context.Context,
	userID string,
	restaurantID string,
	sectionID string,
	positions []domainmenu.Position,
) error {

	if err := s.authz.Authorize(ctx, userID, restaurantID, access.CapabilityManageMenu); err != nil {
		return err
	}
	if len(positions) == 0 {
		return errNoPositions
	}

	if _, err := s.section(ctx, restaurantID, sectionID); err != nil {
		return err
	}

	ok, err := s.repo.ReorderItems(ctx, sectionID, positions)
	if err != nil {
		return err
	}
	if !ok {
		return errItemNotFound
	}
	return nil
}

// -------- Public --------

// PublicMenu is what a diner sees after scanning a table's QR code:
// available items only.
func (s *Service) PublicMenu(ctx context.Context, tableCode string) (*dto.PublicMenuDTO, error) {
	tbl, err := s.repo.FindTableByCode(ctx, strings.TrimSpace(tableCode))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound("table_not_found", "Table not found")
		}
		return nil, err
	}

	rest, err := s.repo.GetRestaurant(ctx, tbl.RestaurantID)
	if err != nil {
		return nil, err
	}

	sections, err := s.repo.ListSections(ctx, tbl.RestaurantID, true)
	if err != nil {
		return nil, err
	}

	out := &dto.PublicMenuDTO{
		RestaurantID:      rest.ID,
		RestaurantName:    rest.Name,
		RestaurantAddress: rest.Address,
		TableName:         tbl.Name,
		TableCode:         tbl.UniqueCode,
		Sections:          make([]dto.PublicMenuSectionDTO, 0, len(sections)),
	}
	for _, sec := range sections {
		items := make([]dto.PublicMenuItemDTO, 0, len(sec.Items))
		for _, it := range sec.Items {
			items = append(items, dto.PublicMenuItemDTO{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
			})
		}
		out.Sections = append(out.Sections, dto.PublicMenuSectionDTO{
			ID:    sec.ID,
			Name:  sec.Name,
			Items: items,
		})
	}
	return out, nil
}

// ======================================================
// HELPERS
// ======================================================

func (s *Service) section(ctx context.Context, restaurantID, sectionID string) (*models.MenuSection, error) {
	sec, err := s.repo.GetSection(ctx, restaurantID, sectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errSectionNotFound
		}
		return nil, err
	}
	return sec, nil
}

func (s *Service) dispatch(restaurantID, userID, action, entity, entityID string) {
	s.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       &userID,
		Action:       action,
		Entity:       entity,
		EntityID:     &entityID,
	})
}

func (s *Service) item(ctx context.Context, restaurantID, itemID string) (*models.MenuItem, error) {
	item, err := s.repo.GetItem(ctx, restaurantID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func applyItem(item *models.MenuItem, in ItemInput) error {
	if in.Name != nil {
		name, err := validName(*in.Name)
		if err != nil {
			return err
		}
		item.Name = name
	}
	if in.Description != nil {
		if len(*in.Description) > 500 {
			return httperr.ErrValidation("invalid_description", "Description must be at most 500 characters")
		}
		item.Description = in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return httperr.ErrValidation("invalid_price", "Price must be greater than zero")
		}
		item.Price = *in.Price
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.DisplayOrder != nil {
		item.DisplayOrder = *in.DisplayOrder
	}
	return nil
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return "", httperr.ErrValidation("invalid_name", "Name must be 1 to 100 characters")
	}
	return name, nil
}
