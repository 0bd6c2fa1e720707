package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeUpstreamClient marks a 4xx answer from an upstream provider.
	ErrorTypeUpstreamClient ErrorType = "UPSTREAM_CLIENT"
	// ErrorTypeUpstreamServer marks a 5xx answer from an upstream provider.
	ErrorTypeUpstreamServer ErrorType = "UPSTREAM_SERVER"
	// ErrorTypeUpstreamUnavailable marks a transport failure or timeout while
	// reaching an upstream provider.
	ErrorTypeUpstreamUnavailable ErrorType = "UPSTREAM_UNAVAILABLE"
	// ErrorTypeEmptyResult marks an upstream 2xx whose result set is empty.
	ErrorTypeEmptyResult ErrorType = "EMPTY_RESULT"
	// ErrorTypeNotFound marks logically absent data.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeConfiguration marks a missing or incomplete provider config block.
	ErrorTypeConfiguration ErrorType = "CONFIGURATION"
	// ErrorTypePersistence marks a result-store read/write failure.
	ErrorTypePersistence ErrorType = "PERSISTENCE"
	// ErrorTypeDeserialization marks an upstream payload that cannot be parsed
	// at all. Partial field defects are tolerated by the normalizers and never
	// reach this type.
	ErrorTypeDeserialization ErrorType = "DESERIALIZATION"
	ErrorTypeValidation      ErrorType = "VALIDATION"
	ErrorTypeInternal        ErrorType = "INTERNAL"
)

// Layer represents the application layer where the error occurred
type Layer string

const (
	LayerUpstream   Layer = "upstream"
	LayerRepository Layer = "repository"
	LayerDomain     Layer = "domain"
	LayerRoute      Layer = "route"
)

// PlatformError represents an error with category, origin layer and optional
// upstream metadata.
type PlatformError struct {
	Type    ErrorType
	Message string
	Err     error
	Layer   Layer
	// UpstreamStatus holds the provider's HTTP status for UPSTREAM_CLIENT
	// errors so the caller-facing status can mirror it. Zero when not set.
	UpstreamStatus int
	// UpstreamBody carries the provider's raw error body, if any.
	UpstreamBody string
	Timestamp    time.Time
}

// Error implements the error interface
func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s][%s] %s: %v", e.Layer, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s][%s] %s", e.Layer, e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *PlatformError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the error type
func (e *PlatformError) GetErrorType() ErrorType {
	return e.Type
}

// NewError creates a new PlatformError with the specified parameters
func NewError(layer Layer, errorType ErrorType, message string, err error) *PlatformError {
	return &PlatformError{
		Type:      errorType,
		Message:   message,
		Err:       err,
		Layer:     layer,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError builds an error for a non-2xx provider answer, keeping the
// provider's status code and raw body.
func NewUpstreamError(status int, body string, message string) *PlatformError {
	errorType := ErrorTypeUpstreamClient
	if status >= http.StatusInternalServerError {
		errorType = ErrorTypeUpstreamServer
	}
	return &PlatformError{
		Type:           errorType,
		Message:        message,
		Layer:          LayerUpstream,
		UpstreamStatus: status,
		UpstreamBody:   body,
		Timestamp:      time.Now().UTC(),
	}
}

// AsError wraps an error with layer context, preserving the type of an already
// classified error.
func AsError(layer Layer, err error, message string) *PlatformError {
	if err == nil {
		return nil
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		wrapped := NewError(layer, platformErr.Type, fmt.Sprintf("%s: %s", message, platformErr.Message), platformErr)
		wrapped.UpstreamStatus = platformErr.UpstreamStatus
		wrapped.UpstreamBody = platformErr.UpstreamBody
		return wrapped
	}

	return NewError(layer, ErrorTypeInternal, message, err)
}

// HTTPStatus maps the error to the HTTP status reported to the caller.
// Upstream 4xx answers keep the provider's own status.
func (e *PlatformError) HTTPStatus() int {
	if e.Type == ErrorTypeUpstreamClient && e.UpstreamStatus != 0 {
		return e.UpstreamStatus
	}
	return ErrorTypeToHTTPStatus(e.Type)
}

// ErrorTypeToHTTPStatus maps error types to HTTP status codes
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeNotFound, ErrorTypeEmptyResult:
		return http.StatusNotFound
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUpstreamClient:
		return http.StatusBadGateway
	case ErrorTypeUpstreamServer, ErrorTypeDeserialization:
		return http.StatusBadGateway
	case ErrorTypeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case ErrorTypeConfiguration, ErrorTypePersistence, ErrorTypeInternal:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}

// IsErrorType checks if an error is a PlatformError with the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if err == nil {
		return false
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Type == errorType
	}

	return false
}

// LogError logs a platform error with proper structure
func LogError(logger zerolog.Logger, err *PlatformError) {
	if err == nil {
		return
	}

	event := logger.Error().
		Str("error_type", string(err.Type)).
		Str("layer", string(err.Layer)).
		Time("timestamp_utc", err.Timestamp)

	if err.UpstreamStatus != 0 {
		event = event.Int("upstream_status", err.UpstreamStatus)
	}
	if err.Err != nil {
		event = event.Err(err.Err)
	}

	event.Msg(err.Message)
}
