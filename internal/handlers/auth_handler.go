package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/httpresp"
	"github.com/BruksfildServices01/letsorder/internal/models"
	"github.com/BruksfildServices01/letsorder/internal/usecase/account"
)

type AuthHandler struct {
	register *account.Register
	login    *account.Login
}

func NewAuthHandler(register *account.Register, login *account.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Responses ---------

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, AuthResponse{Token: s.Token, User: s.User})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: s.Token, User: s.User})
}
