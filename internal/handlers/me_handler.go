package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/middleware"
	"github.com/BruksfildServices01/letsorder/internal/usecase/account"
)

type MeHandler struct {
	getMe *account.GetMe
}

func NewMeHandler(getMe *account.GetMe) *MeHandler {
	return &MeHandler{getMe: getMe}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.getMe.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
