package constants

import "net/http"

// APIError represents a standardized API error with code, message, and HTTP status.
// Use these predefined errors for consistent API responses across the application.
type APIError struct {
	Code    string
	Message string
	Status  int
}

// WithMessage returns a copy of the APIError with a custom message.
func (e APIError) WithMessage(message string) APIError {
	return APIError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
	}
}

// Common errors - shared across multiple modules
var (
	ErrInvalidJSON = APIError{
		Code:    CodeInvalidJSON,
		Message: MsgInvalidJSON,
		Status:  http.StatusBadRequest,
	}
	ErrInternalError = APIError{
		Code:    CodeInternalError,
		Message: MsgInternalError,
		Status:  http.StatusInternalServerError,
	}
)

// Link errors
var (
	ErrNoURL = APIError{
		Code:    CodeNoURL,
		Message: MsgNoURL,
		Status:  http.StatusBadRequest,
	}
	ErrUnavailable = APIError{
		Code:    CodeUnavailable,
		Message: MsgUnavailable,
		Status:  http.StatusConflict,
	}
	ErrAliasNotFound = APIError{
		Code:    CodeNotFound,
		Message: MsgAliasNotFound,
		Status:  http.StatusNotFound,
	}
	ErrAliasNotProvided = APIError{
		Code:    CodeBadRequest,
		Message: MsgAliasNotProvided,
		Status:  http.StatusBadRequest,
	}
)
