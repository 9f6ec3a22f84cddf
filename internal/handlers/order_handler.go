package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/dto"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/httpresp"
	"github.com/BruksfildServices01/letsorder/internal/middleware"
	"github.com/BruksfildServices01/letsorder/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	place  *order.PlaceOrder
	get    *order.GetOrder
	list   *order.ListOrders
	status *order.UpdateStatus
}

func NewOrderHandler(
	place *order.PlaceOrder,
	get *order.GetOrder,
	list *order.ListOrders,
	status *order.UpdateStatus,
) *OrderHandler {
	return &OrderHandler{
		place:  place,
		get:    get,
		list:   list,
		status: status,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderItemRequest struct {
	MenuItemID      string  `json:"menu_item_id" binding:"required"`
	Quantity        int     `json:"quantity"`
	SpecialRequests *string `json:"special_requests"`
}

// Prices are not part of the request; they always come from the menu.
type PlaceOrderRequest struct {
	TableCode    string             `json:"table_code" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"dive"`
	CustomerName *string            `json:"customer_name"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *OrderHandler) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	lines := make([]order.PlaceOrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, order.PlaceOrderLine{
			MenuItemID:      it.MenuItemID,
			Quantity:        it.Quantity,
			SpecialRequests: it.SpecialRequests,
		})
	}

	o, err := h.place.Execute(c.Request.Context(), order.PlaceOrderInput{
		TableCode:    req.TableCode,
		Items:        lines,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.OrderPlacedDTO{
		OrderID:     o.ID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}

// ======================================================
// MANAGER
// ======================================================

func (h *OrderHandler) ListRestaurant(c *gin.Context) {
	views, err := h.list.Restaurant(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	respondOrders(c, views, err)
}

func (h *OrderHandler) ListToday(c *gin.Context) {
	views, err := h.list.Today(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	respondOrders(c, views, err)
}

func (h *OrderHandler) ListTable(c *gin.Context) {
	views, err := h.list.Table(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("table_id"))
	respondOrders(c, views, err)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.status.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
		c.Param("order_id"),
		req.Status,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"id": o.ID, "status": o.Status})
}

func respondOrders(c *gin.Context, views []dto.OrderDetailDTO, err error) {
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, views)
}
