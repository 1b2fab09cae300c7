package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "jobboard/internal/errors"
)

// domainError maps a service-layer error to an echo HTTP error with the
// standard {error, code} envelope.
func domainError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
