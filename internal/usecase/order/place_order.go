package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/domain"
	domainorder "github.com/BruksfildServices01/letsorder/internal/domain/order"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PlaceOrderLine struct {
	MenuItemID      string
	Quantity        int
	SpecialRequests *string
}

type PlaceOrderInput struct {
	TableCode    string
	Items        []PlaceOrderLine
	CustomerName *string
}

// ======================================================
// USE CASE
// ======================================================

type PlaceOrder struct {
	repo  domainorder.Repository
	audit *audit.Dispatcher
}

func NewPlaceOrder(
	repo domainorder.Repository,
	audit *audit.Dispatcher,
) *PlaceOrder {
	return &PlaceOrder{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PlaceOrder) Execute(
	ctx context.Context,
	in PlaceOrderInput,
) (*models.Order, error) {

	// --------------------------------------------------
	// 1. Table: the only source of restaurant scope
	// --------------------------------------------------
	tbl, err := uc.repo.FindTableByCode(ctx, strings.TrimSpace(in.TableCode))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound("table_not_found", "Table not found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Shape checks
	// --------------------------------------------------
	if len(in.Items) == 0 {
		return nil, httperr.ErrValidation("empty_order", "Order must contain at least one item")
	}
	if len(in.Items) > domainorder.MaxLines {
		return nil, httperr.ErrValidation("too_many_items", fmt.Sprintf("Order may contain at most %d items", domainorder.MaxLines))
	}

	customer, err := customerName(in.CustomerName)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Validate and snapshot every line; one bad line fails all
	// --------------------------------------------------
	lines := make([]models.OrderLine, 0, len(in.Items))
	for _, req := range in.Items {
		if req.Quantity <= 0 {
			return nil, httperr.ErrValidation("invalid_quantity", "Quantity must be greater than zero")
		}
		if req.SpecialRequests != nil && utf8.RuneCountInString(*req.SpecialRequests) > domainorder.MaxSpecialRequestsSize {
			return nil, httperr.ErrValidation(
				"special_requests_too_long",
				fmt.Sprintf("Special requests may be at most %d characters", domainorder.MaxSpecialRequestsSize),
			)
		}

		item, err := uc.repo.FindOrderableItem(ctx, tbl.RestaurantID, req.MenuItemID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, httperr.ErrValidation(
					"menu_item_unavailable",
					fmt.Sprintf("menu item %s not found or not available", req.MenuItemID),
				)
			}
			return nil, err
		}

		lines = append(lines, models.OrderLine{
			MenuItemID: item.ID,
			Quantity:   req.Quantity,
			Price:      item.Price,
			Notes:      req.SpecialRequests,
		})
	}

	if len(lines) == 0 {
		return nil, httperr.ErrValidation("empty_order", "Order must contain at least one item")
	}

	// --------------------------------------------------
	// 4. Single-row insert
	// --------------------------------------------------
	o := &models.Order{
		ID:           uuid.NewString(),
		TableID:      tbl.ID,
		Items:        lines,
		TotalAmount:  domainorder.Total(lines),
		Status:       string(domainorder.StatusPending),
		CustomerName: customer,
	}
	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: tbl.RestaurantID,
		Action:       "order_placed",
		Entity:       "order",
		EntityID:     &o.ID,
		Metadata:     map[string]any{"table_id": tbl.ID, "total_amount": o.TotalAmount},
	})

	return o, nil
}

func customerName(name *string) (*string, error) {
	if name == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*name)
	if v == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(v) > domainorder.MaxCustomerNameLength {
		return nil, httperr.ErrValidation(
			"customer_name_too_long",
			fmt.Sprintf("Customer name may be at most %d characters", domainorder.MaxCustomerNameLength),
		)
	}
	return &v, nil
}
