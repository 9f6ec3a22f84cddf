package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/httpresp"
	"github.com/BruksfildServices01/letsorder/internal/middleware"
	"github.com/BruksfildServices01/letsorder/internal/usecase/table"
)

type TableHandler struct {
	svc *table.Service
}

func NewTableHandler(svc *table.Service) *TableHandler {
	return &TableHandler{svc: svc}
}

type TableRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *TableHandler) Create(c *gin.Context) {
	var req TableRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, t)
}

func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.svc.List(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, tables)
}

func (h *TableHandler) Update(c *gin.Context) {
	var req TableRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.svc.Rename(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("table_id"), req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, t)
}

func (h *TableHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("table_id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *TableHandler) RefreshCode(c *gin.Context) {
	t, err := h.svc.RefreshCode(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("table_id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, t)
}

func (h *TableHandler) QRURL(c *gin.Context) {
	url, t, err := h.svc.QRURL(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("table_id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"table_id":    t.ID,
		"unique_code": t.UniqueCode,
		"qr_url":      url,
	})
}
