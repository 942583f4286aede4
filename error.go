package drawguide

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL          = "internal"
	EINVALID           = "invalid"
	ENETWORK           = "network"
	ESTRUCTURE         = "structure"
	EUNSUPPORTEDDOMAIN = "unsupported_domain"
	EUNSUPPORTEDSOURCE = "unsupported_source"
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("drawguide error: code=%s message=%s", e.Code, e.Message)
}

// NetworkError reports a failed outbound request: a connection or DNS
// failure, a timeout, or a non-2xx response.
type NetworkError struct {
	URL string

	// StatusCode is zero when no response was received.
	StatusCode int

	Err error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ENETWORK
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Error()
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
