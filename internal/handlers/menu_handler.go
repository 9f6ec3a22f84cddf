package handlers

import (
	"github.com/gin-gonic/gin"

	domainmenu "github.com/BruksfildServices01/letsorder/internal/domain/menu"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/httpresp"
	"github.com/BruksfildServices01/letsorder/internal/middleware"
	"github.com/BruksfildServices01/letsorder/internal/usecase/menu"
)

type MenuHandler struct {
	svc *menu.Service
}

func NewMenuHandler(svc *menu.Service) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// --------- Requests ---------

type SectionRequest struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

type SectionUpdateRequest struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"display_order"`
}

type PositionRequest struct {
	ID           string `json:"id" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

type ReorderRequest struct {
	Positions []PositionRequest `json:"positions" binding:"required,dive"`
}

func (r ReorderRequest) positions() []domainmenu.Position {
	out := make([]domainmenu.Position, 0, len(r.Positions))
	for _, p := range r.Positions {
		out = append(out, domainmenu.Position{ID: p.ID, DisplayOrder: p.DisplayOrder})
	}
	return out
}

type ItemRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Available    *bool    `json:"available"`
	DisplayOrder *int     `json:"display_order"`
}

func (r ItemRequest) input() menu.ItemInput {
	return menu.ItemInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Available:    r.Available,
		DisplayOrder: r.DisplayOrder,
	}
}

type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// --------- Sections ---------

func (h *MenuHandler) CreateSection(c *gin.Context) {
	var req SectionRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.svc.CreateSection(c.Request.Context(), middleware.UserID(c), c.Param("id"), menu.SectionInput{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *MenuHandler) ListSections(c *gin.Context) {
	sections, err := h.svc.ListSections(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, sections)
}

func (h *MenuHandler) UpdateSection(c *gin.Context) {
	var req SectionUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	sec, err := h.svc.UpdateSection(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("section_id"), menu.SectionUpdate{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, sec)
}

func (h *MenuHandler) DeleteSection(c *gin.Context) {
	if err := h.svc.DeleteSection(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("section_id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *MenuHandler) ReorderSections(c *gin.Context) {
	var req ReorderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.ReorderSections(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.positions()); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// --------- Items ---------

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.svc.CreateItem(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
		c.Param("section_id"),
		req.input(),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, item)
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	var req ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("item_id"), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, item)
}

func (h *MenuHandler) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.svc.SetAvailability(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
		c.Param("item_id"),
		*req.Available,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, item)
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	if err := h.svc.DeleteItem(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("item_id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *MenuHandler) ReorderItems(c *gin.Context) {
	var req ReorderRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.svc.ReorderItems(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
		c.Param("section_id"),
		req.positions(),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// --------- Public ---------

func (h *MenuHandler) PublicMenu(c *gin.Context) {
	m, err := h.svc.PublicMenu(c.Request.Context(), c.Param("table_code"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, m)
}
