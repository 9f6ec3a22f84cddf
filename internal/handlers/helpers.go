package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/letsorder/internal/httperr"
)

// bindJSON writes a 400 and returns false when the body does not decode.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return false
	}
	return true
}
