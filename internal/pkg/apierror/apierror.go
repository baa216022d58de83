package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the gateway's taxonomy. The HTTP boundary
// maps each kind to a status code; everything below the boundary works with
// kinds only.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindAuthorization  Kind = "AUTHORIZATION_ERROR"
	KindNotFound       Kind = "RESOURCE_NOT_FOUND"
	KindRateLimit      Kind = "RATE_LIMIT_ERROR"
	KindConfiguration  Kind = "CONFIGURATION_ERROR"
	KindUnavailable    Kind = "SERVICE_UNAVAILABLE"
	KindUpstream       Kind = "GOOGLE_ADS_API_ERROR"
)

// Error is the gateway's error type. Retryable marks errors caused by
// transient upstream signals (quota, rate, internal, deadline); only those
// are retried by the forwarder.
type Error struct {
	Kind      Kind
	Message   string
	Details   map[string]any
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the status code the boundary surfaces for this error.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindConfiguration:
		return http.StatusInternalServerError
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New builds an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to a new error of the given kind.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation reports invalid input naming the offending field.
func Validation(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Details: map[string]any{"field": field},
	}
}

// Validationf is Validation with a formatted message.
func Validationf(field, format string, args ...any) *Error {
	return Validation(field, fmt.Sprintf(format, args...))
}

// Configuration reports missing or malformed service configuration.
func Configuration(message string, missing []string) *Error {
	e := New(KindConfiguration, message)
	if len(missing) > 0 {
		e.Details = map[string]any{"missing": missing}
	}
	return e
}

// WithDetails returns e with the given detail attached.
func (e *Error) WithDetails(key string, value any) *Error {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// As extracts an *Error from err, wrapping unknown errors as a generic
// unavailable failure so the boundary always has a kind to map.
func As(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Kind: KindUnavailable, Message: "unexpected error", Err: err}
}

// IsRetryable reports whether err carries a transient upstream signal.
func IsRetryable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return false
}

// IsKind reports whether err belongs to the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
