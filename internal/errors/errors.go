package errors

import (
	"errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is raised before any network call is made: a required field
// is blank or a numeric field could not be coerced.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// RequestError means the request never completed: dial failure, timeout,
// or an unreadable response.
type RequestError struct {
	Op    string
	Cause error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return e.Op
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

func NewRequestError(op string, cause error) *RequestError {
	return &RequestError{
		Op:    op,
		Cause: cause,
	}
}

func IsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// RemoteError is a completed request the server rejected with a non-2xx
// status. Message holds the server-provided text when the body carried one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

func NewRemoteError(statusCode int, message string) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func IsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
