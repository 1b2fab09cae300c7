package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// EmployerHandler bundles employer profile HTTP handlers.
type EmployerHandler struct {
	svc service.EmployerService
}

// NewEmployerHandler creates a handler layer.
func NewEmployerHandler(svc service.EmployerService) *EmployerHandler {
	return &EmployerHandler{svc: svc}
}

// EmployerRequest carries employer profile fields.
type EmployerRequest struct {
	UserID      string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	CompanyName string `json:"company_name" validate:"required,max=255"`
	ContactInfo string `json:"contact_info,omitempty" validate:"max=255"`
	Position    string `json:"position,omitempty" validate:"max=100"`
}

// ListEmployers godoc
// @Summary List employers, or look up the profile owned by a user
// @Tags employers
// @Produce json
// @Param user_id query string false "Owning user ID"
// @Success 200 {array} model.Employer
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /employers [get]
func (h *EmployerHandler) ListEmployers(c echo.Context) error {
	if user := c.QueryParam("user_id"); user != "" {
		userID, err := uuid.Parse(user)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		employer, err := h.svc.GetByUserID(c.Request().Context(), userID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, employer)
	}
	employers, err := h.svc.ListEmployers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, employers)
}

// GetEmployer godoc
// @Summary Get employer by id
// @Tags employers
// @Produce json
// @Param id path string true "Employer ID"
// @Success 200 {object} model.Employer
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /employers/{id} [get]
func (h *EmployerHandler) GetEmployer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	employer, err := h.svc.GetEmployer(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, employer)
}

// CreateEmployer godoc
// @Summary Create an employer profile for an existing user
// @Tags employers
// @Accept json
// @Produce json
// @Param request body EmployerRequest true "Employer fields"
// @Success 201 {object} model.Employer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /employers [post]
func (h *EmployerHandler) CreateEmployer(c echo.Context) error {
	var req EmployerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	employer, err := h.svc.CreateEmployer(c.Request().Context(), userID, service.EmployerUpdateInput{
		CompanyName: req.CompanyName,
		ContactInfo: req.ContactInfo,
		Position:    req.Position,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, employer)
}

// UpdateEmployer godoc
// @Summary Update employer profile fields
// @Tags employers
// @Accept json
// @Produce json
// @Param id path string true "Employer ID"
// @Param request body EmployerRequest true "Employer fields"
// @Success 200 {object} model.Employer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /employers/{id} [put]
func (h *EmployerHandler) UpdateEmployer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req EmployerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employer, err := h.svc.UpdateEmployer(c.Request().Context(), id, service.EmployerUpdateInput{
		CompanyName: req.CompanyName,
		ContactInfo: req.ContactInfo,
		Position:    req.Position,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, employer)
}

// DeleteEmployer godoc
// @Summary Delete an employer profile
// @Tags employers
// @Param id path string true "Employer ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /employers/{id} [delete]
func (h *EmployerHandler) DeleteEmployer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteEmployer(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchEmployers godoc
// @Summary Search employers by company name substring
// @Tags employers
// @Produce json
// @Param company query string true "Company name substring"
// @Success 200 {array} model.Employer
// @Security BearerAuth
// @Router /employers/search [get]
func (h *EmployerHandler) SearchEmployers(c echo.Context) error {
	q := c.QueryParam("company")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "company query parameter required")
	}
	employers, err := h.svc.SearchByCompanyName(c.Request().Context(), q)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, employers)
}
