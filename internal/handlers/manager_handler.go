package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/httpresp"
	"github.com/BruksfildServices01/letsorder/internal/middleware"
	"github.com/BruksfildServices01/letsorder/internal/usecase/invite"
	"github.com/BruksfildServices01/letsorder/internal/usecase/restaurant"
)

// ======================================================
// HANDLER
// ======================================================

type ManagerHandler struct {
	list   *restaurant.ListManagers
	remove *restaurant.RemoveManager
	perms  *restaurant.UpdateManagerPermissions

	issue  *invite.Issue
	redeem *invite.Redeem
}

func NewManagerHandler(
	list *restaurant.ListManagers,
	remove *restaurant.RemoveManager,
	perms *restaurant.UpdateManagerPermissions,
	issue *invite.Issue,
	redeem *invite.Redeem,
) *ManagerHandler {
	return &ManagerHandler{
		list:   list,
		remove: remove,
		perms:  perms,
		issue:  issue,
		redeem: redeem,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type InviteRequest struct {
	Email         string `json:"email" binding:"required"`
	CanManageMenu bool   `json:"can_manage_menu"`
}

type InviteResponse struct {
	InviteToken string    `json:"invite_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type JoinRequest struct {
	Email    string  `json:"email" binding:"required"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" binding:"required"`
}

type PermissionsRequest struct {
	CanManageMenu *bool `json:"can_manage_menu" binding:"required"`
}

type ManagerResponse struct {
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	Role          string    `json:"role"`
	CanManageMenu bool      `json:"can_manage_menu"`
	CreatedAt     time.Time `json:"created_at"`
}

// ======================================================
// MANAGERS
// ======================================================

func (h *ManagerHandler) List(c *gin.Context) {
	managers, err := h.list.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]ManagerResponse, 0, len(managers))
	for _, m := range managers {
		out = append(out, ManagerResponse(m))
	}
	httpresp.List(c, out)
}

func (h *ManagerHandler) Remove(c *gin.Context) {
	err := h.remove.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("user_id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *ManagerHandler) UpdatePermissions(c *gin.Context) {
	var req PermissionsRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.perms.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
		c.Param("user_id"),
		*req.CanManageMenu,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// INVITES
// ======================================================

func (h *ManagerHandler) Invite(c *gin.Context) {
	var req InviteRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.issue.Execute(c.Request.Context(), middleware.UserID(c), invite.IssueInput{
		RestaurantID:  c.Param("id"),
		Email:         req.Email,
		CanManageMenu: req.CanManageMenu,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, InviteResponse{
		InviteToken: inv.Token,
		ExpiresAt:   inv.ExpiresAt,
	})
}

// Join is public: the token and the invited email authorize the join. An
// email that already has an account must also present its password.
func (h *ManagerHandler) Join(c *gin.Context) {
	var req JoinRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.redeem.Execute(c.Request.Context(), invite.RedeemInput{
		RestaurantID: c.Param("id"),
		Token:        c.Param("token"),
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: res.Token, User: res.User})
}
