package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// NotificationHandler bundles notification HTTP handlers.
type NotificationHandler struct {
	svc service.NotificationService
}

// NewNotificationHandler creates a handler layer.
func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// NotificationRequest creates a notification, optionally emailing it.
type NotificationRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	Subject   string `json:"subject,omitempty" validate:"max=255"`
	Message   string `json:"message" validate:"required,max=2000"`
	SendEmail bool   `json:"send_email,omitempty"`
}

func parseNotificationID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// CreateNotification godoc
// @Summary Create a notification, optionally sending an email
// @Description Email delivery is best effort; a failed send never fails the create.
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body NotificationRequest true "Notification data"
// @Success 201 {object} model.Notification
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req NotificationRequest
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

	n, err := h.svc.Create(c.Request().Context(), userID, req.Subject, req.Message, req.SendEmail)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, n)
}

// ListNotifications godoc
// @Summary List notifications for a user
// @Tags notifications
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} model.Notification
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	list, err := h.svc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListUnsentEmail godoc
// @Summary List notifications whose email delivery has not succeeded
// @Description Sweep endpoint for an external retry job.
// @Tags notifications
// @Produce json
// @Success 200 {array} model.Notification
// @Security BearerAuth
// @Router /notifications/unsent-email [get]
func (h *NotificationHandler) ListUnsentEmail(c echo.Context) error {
	list, err := h.svc.ListUnsentEmail(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// MarkRead godoc
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} model.Notification
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return err
	}
	n, err := h.svc.MarkRead(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, n)
}

// MarkAllRead godoc
// @Summary Mark all of a user's notifications read
// @Tags notifications
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if err := h.svc.MarkAllRead(c.Request().Context(), userID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "notifications marked read"})
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
