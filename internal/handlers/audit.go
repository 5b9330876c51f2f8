package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Bluecroft/internal/audit"
	"Bluecroft/internal/dto"
)

// AuditHandler serves the activity trail.
type AuditHandler struct {
	trail *audit.Trail
}

func NewAuditHandler(trail *audit.Trail) *AuditHandler {
	return &AuditHandler{trail: trail}
}

// List godoc
// @Summary      Activity trail, newest first
// @Tags         audit
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.AuditResponse
// @Router       /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	entries := h.trail.List()
	items := make([]dto.AuditEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = dto.AuditEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Action:    e.Action,
			User:      e.User,
			Details:   e.Details,
		}
	}
	c.JSON(http.StatusOK, dto.AuditResponse{Items: items})
}
