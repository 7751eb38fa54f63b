package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used by repositories and services. Handlers translate
// these into the wire taxonomy exactly once at the boundary.
var (
	// ErrNotFound indicates that a requested resource could not be found
	// (or is not owned by the caller; the two are deliberately conflated).
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate indicates an attempt to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrUnauthorized indicates a missing, invalid or expired credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a valid identity with insufficient role.
	ErrForbidden = errors.New("forbidden")
)

// Wire error codes shared with the frontend.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError is a domain error carrying a wire code and HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status, code and cause.
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Status: status, Err: err}
}

// NewValidationError reports malformed input caught before touching the store.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Status: http.StatusBadRequest, Err: ErrValidation}
}

// NewInvalidCredentialsError is returned for both "no such user" and "wrong
// password". The two must stay indistinguishable to prevent user enumeration.
func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "Invalid email or password", Status: http.StatusUnauthorized, Err: ErrUnauthorized}
}

// NewEmailExistsError reports a registration conflict.
func NewEmailExistsError() *AppError {
	return &AppError{Code: CodeEmailExists, Message: "Email already exists", Status: http.StatusConflict, Err: ErrDuplicate}
}

// NewUnauthorizedError covers missing, malformed, expired and tampered
// tokens alike so the response never acts as a validity oracle.
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized"
	}
	return &AppError{Code: CodeUnauthorized, Message: message, Status: http.StatusUnauthorized, Err: ErrUnauthorized}
}

// NewForbiddenError reports a valid identity with an insufficient role.
func NewForbiddenError() *AppError {
	return &AppError{Code: CodeForbidden, Message: "Access denied", Status: http.StatusForbidden, Err: ErrForbidden}
}

// NewNotFoundError reports an absent resource. Ownership mismatches use the
// same code and message to avoid leaking other users' resources.
func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = "Resource not found"
	}
	return &AppError{Code: CodeNotFound, Message: message, Status: http.StatusNotFound, Err: ErrNotFound}
}

// NewInternalError wraps an unexpected failure behind a generic message.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Status: http.StatusInternalServerError, Err: err}
}

// FromError maps any error to an AppError. Already-typed errors pass
// through; sentinel errors get their canonical wire form; everything else
// becomes an INTERNAL_ERROR with no detail surfaced to the client.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError("")
	case errors.Is(err, ErrDuplicate):
		return NewEmailExistsError()
	case errors.Is(err, ErrValidation):
		return NewValidationError("Validation error")
	case errors.Is(err, ErrForbidden):
		return NewForbiddenError()
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorizedError("")
	default:
		return NewInternalError(err)
	}
}
