package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// JobSeekerHandler bundles job seeker profile HTTP handlers.
type JobSeekerHandler struct {
	svc service.JobSeekerService
}

// NewJobSeekerHandler creates a handler layer.
func NewJobSeekerHandler(svc service.JobSeekerService) *JobSeekerHandler {
	return &JobSeekerHandler{svc: svc}
}

// JobSeekerRequest carries job seeker profile fields.
type JobSeekerRequest struct {
	UserID           string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	EducationDetails string `json:"education_details,omitempty" validate:"max=1000"`
	Skills           string `json:"skills,omitempty" validate:"max=1000"`
	College          string `json:"college,omitempty" validate:"max=255"`
	WorkStatus       string `json:"work_status,omitempty" validate:"max=50"`
	Experience       int    `json:"experience,omitempty" validate:"min=0"`
}

// ListJobSeekers godoc
// @Summary List job seekers, or look up the profile owned by a user
// @Tags jobseekers
// @Produce json
// @Param user_id query string false "Owning user ID"
// @Success 200 {array} model.JobSeeker
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobseekers [get]
func (h *JobSeekerHandler) ListJobSeekers(c echo.Context) error {
	if user := c.QueryParam("user_id"); user != "" {
		userID, err := uuid.Parse(user)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		seeker, err := h.svc.GetByUserID(c.Request().Context(), userID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, seeker)
	}
	seekers, err := h.svc.ListJobSeekers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, seekers)
}

// GetJobSeeker godoc
// @Summary Get job seeker by id
// @Tags jobseekers
// @Produce json
// @Param id path string true "Job seeker ID"
// @Success 200 {object} model.JobSeeker
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobseekers/{id} [get]
func (h *JobSeekerHandler) GetJobSeeker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	seeker, err := h.svc.GetJobSeeker(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, seeker)
}

// CreateJobSeeker godoc
// @Summary Create a job seeker profile for an existing user
// @Tags jobseekers
// @Accept json
// @Produce json
// @Param request body JobSeekerRequest true "Job seeker fields"
// @Success 201 {object} model.JobSeeker
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobseekers [post]
func (h *JobSeekerHandler) CreateJobSeeker(c echo.Context) error {
	var req JobSeekerRequest
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

	seeker, err := h.svc.CreateJobSeeker(c.Request().Context(), userID, service.JobSeekerUpdateInput{
		EducationDetails: req.EducationDetails,
		Skills:           req.Skills,
		College:          req.College,
		WorkStatus:       req.WorkStatus,
		Experience:       req.Experience,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, seeker)
}

// UpdateJobSeeker godoc
// @Summary Update job seeker profile fields
// @Tags jobseekers
// @Accept json
// @Produce json
// @Param id path string true "Job seeker ID"
// @Param request body JobSeekerRequest true "Job seeker fields"
// @Success 200 {object} model.JobSeeker
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobseekers/{id} [put]
func (h *JobSeekerHandler) UpdateJobSeeker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req JobSeekerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	seeker, err := h.svc.UpdateJobSeeker(c.Request().Context(), id, service.JobSeekerUpdateInput{
		EducationDetails: req.EducationDetails,
		Skills:           req.Skills,
		College:          req.College,
		WorkStatus:       req.WorkStatus,
		Experience:       req.Experience,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, seeker)
}

// DeleteJobSeeker godoc
// @Summary Delete a job seeker profile
// @Description Fails with 409 when resumes or applications still exist.
// @Tags jobseekers
// @Param id path string true "Job seeker ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jobseekers/{id} [delete]
func (h *JobSeekerHandler) DeleteJobSeeker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteJobSeeker(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchJobSeekers godoc
// @Summary Search job seekers by college or skill substring
// @Tags jobseekers
// @Produce json
// @Param college query string false "College substring"
// @Param skill query string false "Skill substring"
// @Success 200 {array} model.JobSeeker
// @Security BearerAuth
// @Router /jobseekers/search [get]
func (h *JobSeekerHandler) SearchJobSeekers(c echo.Context) error {
	ctx := c.Request().Context()
	if college := c.QueryParam("college"); college != "" {
		seekers, err := h.svc.SearchByCollege(ctx, college)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, seekers)
	}
	if skill := c.QueryParam("skill"); skill != "" {
		seekers, err := h.svc.SearchBySkill(ctx, skill)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, seekers)
	}
	return echo.NewHTTPError(http.StatusBadRequest, "college or skill query parameter required")
}
