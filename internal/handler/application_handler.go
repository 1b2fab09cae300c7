package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// ApplicationHandler bundles application HTTP handlers.
type ApplicationHandler struct {
	svc service.ApplicationService
}

// NewApplicationHandler creates a handler layer.
func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// ApplyRequest creates an application. ResumeID 0 uses the default resume.
type ApplyRequest struct {
	JobID       uint   `json:"job_id" validate:"required"`
	JobSeekerID string `json:"job_seeker_id" validate:"required,uuid"`
	ResumeID    uint   `json:"resume_id,omitempty"`
	CoverLetter string `json:"cover_letter,omitempty" validate:"max=4000"`
}

// ApplicationUpdateRequest carries the mutable application fields.
type ApplicationUpdateRequest struct {
	CoverLetter      string `json:"cover_letter,omitempty" validate:"max=4000"`
	Status           string `json:"status,omitempty" validate:"max=50"`
	Notes            string `json:"notes,omitempty" validate:"max=2000"`
	EmployerFeedback string `json:"employer_feedback,omitempty" validate:"max=2000"`
}

// ReviewRequest optionally overwrites the notes while marking reviewed.
type ReviewRequest struct {
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

// ShortlistRequest toggles the shortlist flag.
type ShortlistRequest struct {
	Shortlisted bool `json:"shortlisted"`
}

// InterviewRequest schedules the interview.
type InterviewRequest struct {
	InterviewDate time.Time `json:"interview_date" validate:"required"`
}

func parseApplicationID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// ListApplications godoc
// @Summary List applications, optionally filtered
// @Tags applications
// @Produce json
// @Param job_id query int false "Filter by job"
// @Param job_seeker_id query string false "Filter by job seeker"
// @Param status query string false "Filter by status"
// @Success 200 {array} model.Application
// @Security BearerAuth
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	ctx := c.Request().Context()
	if job := c.QueryParam("job_id"); job != "" {
		jobID, err := strconv.Atoi(job)
		if err != nil || jobID < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid job_id")
		}
		apps, err := h.svc.ListByJob(ctx, uint(jobID))
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, apps)
	}
	if seeker := c.QueryParam("job_seeker_id"); seeker != "" {
		seekerID, err := uuid.Parse(seeker)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid job_seeker_id")
		}
		apps, err := h.svc.ListByJobSeeker(ctx, seekerID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, apps)
	}
	if status := c.QueryParam("status"); status != "" {
		apps, err := h.svc.ListByStatus(ctx, status)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, apps)
	}
	apps, err := h.svc.ListApplications(ctx)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

// GetApplication godoc
// @Summary Get application by id
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} model.Application
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return err
	}
	app, err := h.svc.GetApplication(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// Apply godoc
// @Summary Apply to a job
// @Tags applications
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Application data"
// @Success 201 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	seekerID, err := uuid.Parse(req.JobSeekerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job_seeker_id")
	}

	app, err := h.svc.Apply(c.Request().Context(), req.JobID, seekerID, req.ResumeID, req.CoverLetter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, app)
}

// UpdateApplication godoc
// @Summary Update application fields
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body ApplicationUpdateRequest true "Application fields"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c echo.Context) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return err
	}

	var req ApplicationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.svc.UpdateApplication(c.Request().Context(), id, service.ApplicationInput{
		CoverLetter:      req.CoverLetter,
		Status:           req.Status,
		Notes:            req.Notes,
		EmployerFeedback: req.EmployerFeedback,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Delete an application
// @Tags applications
// @Param id path int true "Application ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c echo.Context) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteApplication(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkReviewed godoc
// @Summary Mark an application reviewed
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body ReviewRequest false "Optional notes"
// @Success 200 {object} model.Application
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/review [post]
func (h *ApplicationHandler) MarkReviewed(c echo.Context) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	app, err := h.svc.MarkReviewed(c.Request().Context(), id, req.Notes)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// Shortlist godoc
// @Summary Toggle application shortlist flag
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body ShortlistRequest true "Shortlist flag"
// @Success 200 {object} model.Application
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/shortlist [post]
func (h *ApplicationHandler) Shortlist(c echo.Context) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return err
	}

	var req ShortlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	app, err := h.svc.Shortlist(c.Request().Context(), id, req.Shortlisted)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// ScheduleInterview godoc
// @Summary Schedule an interview for an application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body InterviewRequest true "Interview date"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/interview [post]
func (h *ApplicationHandler) ScheduleInterview(c echo.Context) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return err
	}

	var req InterviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.svc.ScheduleInterview(c.Request().Context(), id, req.InterviewDate)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, app)
}
