package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/httpresp"
	"github.com/BruksfildServices01/letsorder/internal/middleware"
	"github.com/BruksfildServices01/letsorder/internal/models"
	"github.com/BruksfildServices01/letsorder/internal/usecase/restaurant"
)

// ======================================================
// HANDLER
// ======================================================

type RestaurantHandler struct {
	create *restaurant.Create
	list   *restaurant.ListMine
	get    *restaurant.Get
	update *restaurant.Update
	delete *restaurant.Delete
}

func NewRestaurantHandler(
	create *restaurant.Create,
	list *restaurant.ListMine,
	get *restaurant.Get,
	update *restaurant.Update,
	del *restaurant.Delete,
) *RestaurantHandler {
	return &RestaurantHandler{
		create: create,
		list:   list,
		get:    get,
		update: update,
		delete: del,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type RestaurantRequest struct {
	Name              *string `json:"name"`
	Address           *string `json:"address"`
	EstablishmentYear *int    `json:"establishment_year"`
	GoogleMapsLink    *string `json:"google_maps_link"`
}

func (r RestaurantRequest) details() restaurant.Details {
	return restaurant.Details{
		Name:              r.Name,
		Address:           r.Address,
		EstablishmentYear: r.EstablishmentYear,
		GoogleMapsLink:    r.GoogleMapsLink,
	}
}

type MyRestaurantResponse struct {
	models.Restaurant
	Role          string `json:"role"`
	CanManageMenu bool   `json:"can_manage_menu"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req RestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), req.details())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, r)
}

func (h *RestaurantHandler) List(c *gin.Context) {
	memberships, err := h.list.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]MyRestaurantResponse, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, MyRestaurantResponse{
			Restaurant:    m.Restaurant,
			Role:          m.Role,
			CanManageMenu: m.CanManageMenu,
		})
	}
	httpresp.List(c, out)
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	r, err := h.get.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	var req RestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.details())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
