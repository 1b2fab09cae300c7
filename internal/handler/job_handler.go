package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"jobboard/internal/service"
)

// JobHandler bundles job posting HTTP handlers.
type JobHandler struct {
	svc service.JobService
}

// NewJobHandler creates a handler layer.
func NewJobHandler(svc service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// JobRequest carries job posting fields.
type JobRequest struct {
	EmployerID          string          `json:"employer_id,omitempty" validate:"omitempty,uuid"`
	Title               string          `json:"title" validate:"required,max=255"`
	Description         string          `json:"description,omitempty" validate:"max=4000"`
	Location            string          `json:"location,omitempty" validate:"max=255"`
	Salary              decimal.Decimal `json:"salary,omitempty"`
	SkillsRequired      string          `json:"skills_required,omitempty" validate:"max=1000"`
	EligibilityCriteria string          `json:"eligibility_criteria,omitempty" validate:"max=1000"`
	Status              string          `json:"status,omitempty" validate:"max=50"`
}

func parseJobID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (r JobRequest) toInput() service.JobInput {
	return service.JobInput{
		Title:               r.Title,
		Description:         r.Description,
		Location:            r.Location,
		Salary:              r.Salary,
		SkillsRequired:      r.SkillsRequired,
		EligibilityCriteria: r.EligibilityCriteria,
		Status:              r.Status,
	}
}

// ListJobs godoc
// @Summary List job postings
// @Tags jobs
// @Produce json
// @Param status query string false "Filter by status"
// @Param employer_id query string false "Filter by employer"
// @Success 200 {array} model.Job
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	ctx := c.Request().Context()
	if status := c.QueryParam("status"); status != "" {
		jobs, err := h.svc.ListByStatus(ctx, status)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, jobs)
	}
	if employer := c.QueryParam("employer_id"); employer != "" {
		employerID, err := uuid.Parse(employer)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid employer_id")
		}
		jobs, err := h.svc.ListByEmployer(ctx, employerID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, jobs)
	}
	jobs, err := h.svc.ListJobs(ctx)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get job by id
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return err
	}
	job, err := h.svc.GetJob(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body JobRequest true "Job fields"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	employerID, err := uuid.Parse(req.EmployerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employer_id")
	}

	job, err := h.svc.CreateJob(c.Request().Context(), employerID, req.toInput())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body JobRequest true "Job fields"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.svc.UpdateJob(c.Request().Context(), id, req.toInput())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a job posting
// @Tags jobs
// @Param id path int true "Job ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	id, err := parseJobID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteJob(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchJobs godoc
// @Summary Search jobs by title, location or skill substring
// @Tags jobs
// @Produce json
// @Param title query string false "Title substring"
// @Param location query string false "Location substring"
// @Param skill query string false "Skill substring"
// @Success 200 {array} model.Job
// @Security BearerAuth
// @Router /jobs/search [get]
func (h *JobHandler) SearchJobs(c echo.Context) error {
	ctx := c.Request().Context()
	if title := c.QueryParam("title"); title != "" {
		jobs, err := h.svc.SearchByTitle(ctx, title)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, jobs)
	}
	if location := c.QueryParam("location"); location != "" {
		jobs, err := h.svc.SearchByLocation(ctx, location)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, jobs)
	}
	if skill := c.QueryParam("skill"); skill != "" {
		jobs, err := h.svc.SearchBySkill(ctx, skill)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, jobs)
	}
	return echo.NewHTTPError(http.StatusBadRequest, "title, location or skill query parameter required")
}
