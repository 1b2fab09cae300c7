package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmployerNotFound is returned when an employer profile is not found.
	ErrEmployerNotFound = errors.New("employer not found")
	// ErrJobSeekerNotFound is returned when a job seeker profile is not found.
	ErrJobSeekerNotFound = errors.New("job seeker not found")
	// ErrJobNotFound is returned when a job posting is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrResumeNotFound is returned when a resume is not found.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateEmail is returned when registering an email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidResetToken is returned when a reset token is unknown or already used.
	ErrInvalidResetToken = errors.New("invalid or used reset token")
	// ErrResetTokenExpired is returned when a reset token is past its expiry.
	ErrResetTokenExpired = errors.New("reset token expired")
	// ErrJobSeekerHasDependents blocks deleting a job seeker with resumes or applications.
	ErrJobSeekerHasDependents = errors.New("job seeker has resumes or applications")
	// ErrRoleMismatch is returned when a profile row does not match the user's role.
	ErrRoleMismatch = errors.New("profile does not match user role")
	// ErrInvalidRole is returned when a role value is not one of the known values.
	ErrInvalidRole = errors.New("invalid role")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmployerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EMPLOYER_NOT_FOUND")
	case errors.Is(err, ErrJobSeekerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_SEEKER_NOT_FOUND")
	case errors.Is(err, ErrJobNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case errors.Is(err, ErrResumeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RESUME_NOT_FOUND")
	case errors.Is(err, ErrApplicationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case errors.Is(err, ErrNotificationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOTIFICATION_NOT_FOUND")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidResetToken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RESET_TOKEN")
	case errors.Is(err, ErrResetTokenExpired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "RESET_TOKEN_EXPIRED")
	case errors.Is(err, ErrJobSeekerHasDependents):
		return NewHTTPError(http.StatusConflict, err.Error(), "JOB_SEEKER_HAS_DEPENDENTS")
	case errors.Is(err, ErrRoleMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_MISMATCH")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
