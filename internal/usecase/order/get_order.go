package order

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/letsorder/internal/domain"
	domainorder "github.com/BruksfildServices01/letsorder/internal/domain/order"
	"github.com/BruksfildServices01/letsorder/internal/dto"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

var errOrderNotFound = httperr.ErrNotFound("order_not_found", "Order not found")

type GetOrder struct {
	repo domainorder.Repository
}

func NewGetOrder(repo domainorder.Repository) *GetOrder {
	return &GetOrder{repo: repo}
}

// Execute is public: knowing the order id is enough to follow it.
func (uc *GetOrder) Execute(ctx context.Context, orderID string) (*dto.OrderDetailDTO, error) {
	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errOrderNotFound
		}
		return nil, err
	}

	views, err := enrich(ctx, uc.repo, []models.Order{*o})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// enrich attaches current menu item names to stored snapshots with one
// lookup for the whole batch. Prices always come from the snapshot.
func enrich(
	ctx context.Context,
	repo domainorder.Repository,
	orders []models.Order,
) ([]dto.OrderDetailDTO, error) {

	seen := map[string]bool{}
	var ids []string
	for _, o := range orders {
		for _, l := range o.Items {
			if !seen[l.MenuItemID] {
				seen[l.MenuItemID] = true
				ids = append(ids, l.MenuItemID)
			}
		}
	}

	names, err := repo.MenuItemNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrderDetailDTO, 0, len(orders))
	for _, o := range orders {
		lines := make([]dto.OrderLineDTO, 0, len(o.Items))
		for _, l := range o.Items {
			lines = append(lines, dto.OrderLineDTO{
				MenuItemID:      l.MenuItemID,
				MenuItemName:    domainorder.ItemName(names, l.MenuItemID),
				Quantity:        l.Quantity,
				Price:           l.Price,
				SpecialRequests: l.Notes,
			})
		}

		out = append(out, dto.OrderDetailDTO{
			ID:             o.ID,
			TableID:        o.TableID,
			TableName:      o.Table.Name,
			RestaurantName: o.Table.Restaurant.Name,
			Items:          lines,
			TotalAmount:    o.TotalAmount,
			Status:         o.Status,
			CustomerName:   o.CustomerName,
			CreatedAt:      o.CreatedAt,
			UpdatedAt:      o.UpdatedAt,
		})
	}
	return out, nil
}
