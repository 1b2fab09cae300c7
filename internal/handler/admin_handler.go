package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// AdminHandler serves aggregate admin views.
type AdminHandler struct {
	svc service.AdminService
}

// NewAdminHandler creates a handler layer.
func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Stats godoc
// @Summary Per-entity row counts
// @Tags admin
// @Produce json
// @Success 200 {object} service.Stats
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
