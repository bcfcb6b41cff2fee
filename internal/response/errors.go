package response

import "fmt"

// ErrorCode is the closed set of failure categories an operation can report
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// AppError is a classified failure. Details is for server-side logs only and is never
// written to clients.
type AppError struct {
	Code    ErrorCode           `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"-"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError reports a missing resource by type and id
func NewNotFoundError(resource string, id any) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s with ID %v was not found.", resource, id), "")
}

// NewArgumentNullError reports missing input for a resource
func NewArgumentNullError(resource string) *AppError {
	return NewAppError(ErrCodeBadRequest, fmt.Sprintf("%s data is missing", resource), "")
}

// NewValidationError reports per-field validation failures
func NewValidationError(message string, fields map[string][]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// NewBadRequestError reports malformed input
func NewBadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, "")
}

// NewForbiddenError reports a caller without rights on the resource
func NewForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, "")
}

// NewUnauthorizedError reports a missing or invalid identity
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, "")
}

// NewConflictError reports a write that lost against a concurrent writer or a uniqueness rule
func NewConflictError(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, "")
}

// NewInternalError hides details behind a generic message
func NewInternalError(details string) *AppError {
	return NewAppError(ErrCodeInternal, internalErrorMessage, details)
}
