package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// ResumeHandler bundles resume HTTP handlers.
type ResumeHandler struct {
	svc service.ResumeService
}

// NewResumeHandler creates a handler layer.
func NewResumeHandler(svc service.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// ResumeMetaRequest carries resume metadata fields.
type ResumeMetaRequest struct {
	ResumeName   string `json:"resume_name" form:"resume_name" validate:"required,max=255"`
	ParsedSkills string `json:"parsed_skills" form:"parsed_skills" validate:"max=1000"`
}

// SetDefaultRequest names the resume to become the default.
type SetDefaultRequest struct {
	JobSeekerID string `json:"job_seeker_id" validate:"required,uuid"`
	ResumeID    uint   `json:"resume_id" validate:"required"`
}

func parseResumeID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// ListResumes godoc
// @Summary List resumes, optionally by job seeker
// @Tags resumes
// @Produce json
// @Param job_seeker_id query string false "Job seeker ID"
// @Success 200 {array} model.Resume
// @Security BearerAuth
// @Router /resumes [get]
func (h *ResumeHandler) ListResumes(c echo.Context) error {
	ctx := c.Request().Context()
	if seeker := c.QueryParam("job_seeker_id"); seeker != "" {
		seekerID, err := uuid.Parse(seeker)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid job_seeker_id")
		}
		resumes, err := h.svc.ListByJobSeeker(ctx, seekerID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, resumes)
	}
	resumes, err := h.svc.ListResumes(ctx)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, resumes)
}

// GetResume godoc
// @Summary Get resume by id
// @Tags resumes
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} model.Resume
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resumes/{id} [get]
func (h *ResumeHandler) GetResume(c echo.Context) error {
	id, err := parseResumeID(c)
	if err != nil {
		return err
	}
	resume, err := h.svc.GetResume(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, resume)
}

// UploadResume godoc
// @Summary Upload a resume file with metadata
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param job_seeker_id formData string true "Job seeker ID"
// @Param resume_name formData string true "Display name"
// @Param parsed_skills formData string false "Comma-separated skills"
// @Param file formData file true "Resume file"
// @Success 201 {object} model.Resume
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resumes [post]
func (h *ResumeHandler) UploadResume(c echo.Context) error {
	seekerID, err := uuid.Parse(c.FormValue("job_seeker_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job_seeker_id")
	}

	var req ResumeMetaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	resume, err := h.svc.Upload(c.Request().Context(), seekerID, service.ResumeInput{
		ResumeName:   req.ResumeName,
		ParsedSkills: req.ParsedSkills,
	}, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, resume)
}

// UpdateResume godoc
// @Summary Update resume metadata
// @Tags resumes
// @Accept json
// @Produce json
// @Param id path int true "Resume ID"
// @Param request body ResumeMetaRequest true "Metadata fields"
// @Success 200 {object} model.Resume
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resumes/{id} [put]
func (h *ResumeHandler) UpdateResume(c echo.Context) error {
	id, err := parseResumeID(c)
	if err != nil {
		return err
	}

	var req ResumeMetaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resume, err := h.svc.UpdateResume(c.Request().Context(), id, service.ResumeInput{
		ResumeName:   req.ResumeName,
		ParsedSkills: req.ParsedSkills,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, resume)
}

// DeleteResume godoc
// @Summary Delete a resume and its stored file
// @Tags resumes
// @Param id path int true "Resume ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resumes/{id} [delete]
func (h *ResumeHandler) DeleteResume(c echo.Context) error {
	id, err := parseResumeID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteResume(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DownloadResume godoc
// @Summary Get a short-lived download link for a resume file
// @Tags resumes
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resumes/{id}/download [get]
func (h *ResumeHandler) DownloadResume(c echo.Context) error {
	id, err := parseResumeID(c)
	if err != nil {
		return err
	}
	url, err := h.svc.DownloadURL(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// SetDefault godoc
// @Summary Mark one resume as the job seeker's default
// @Tags resumes
// @Accept json
// @Produce json
// @Param request body SetDefaultRequest true "Job seeker and resume"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resumes/set-default [post]
func (h *ResumeHandler) SetDefault(c echo.Context) error {
	var req SetDefaultRequest
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

	if err := h.svc.SetDefault(c.Request().Context(), seekerID, req.ResumeID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "default resume updated"})
}
