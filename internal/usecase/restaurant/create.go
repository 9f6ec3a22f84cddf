package restaurant

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	domain "github.com/BruksfildServices01/letsorder/internal/domain/restaurant"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type Details struct {
	Name              *string
	Address           *string
	EstablishmentYear *int
	GoogleMapsLink    *string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

// Execute creates the restaurant and makes ownerID its super_admin in the
// same transaction.
func (uc *Create) Execute(
	ctx context.Context,
	ownerID string,
	in Details,
) (*models.Restaurant, error) {

	if in.Name == nil {
		return nil, httperr.ErrValidation("invalid_name", "Restaurant name is required")
	}

	r := &models.Restaurant{ID: uuid.NewString()}
	if err := apply(r, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateWithOwner(ctx, r, ownerID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: r.ID,
		UserID:       &ownerID,
		Action:       "restaurant_created",
		Entity:       "restaurant",
		EntityID:     &r.ID,
	})

	return r, nil
}

// apply copies the supplied fields onto r after validating them.
func apply(r *models.Restaurant, in Details) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > 100 {
			return httperr.ErrValidation("invalid_name", "Restaurant name must be 1 to 100 characters")
		}
		r.Name = name
	}
	if in.Address != nil {
		if len(*in.Address) > 255 {
			return httperr.ErrValidation("invalid_address", "Address must be at most 255 characters")
		}
		r.Address = in.Address
	}
	if in.EstablishmentYear != nil {
		if *in.EstablishmentYear < 1800 || *in.EstablishmentYear > 2100 {
			return httperr.ErrValidation("invalid_establishment_year", "Establishment year is out of range")
		}
		r.EstablishmentYear = in.EstablishmentYear
	}
	if in.GoogleMapsLink != nil {
		if len(*in.GoogleMapsLink) > 500 {
			return httperr.ErrValidation("invalid_google_maps_link", "Maps link must be at most 500 characters")
		}
		r.GoogleMapsLink = in.GoogleMapsLink
	}
	return nil
}
