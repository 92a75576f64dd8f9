package errors

import "net/http"

// NewHTTPError creates a new HTTP error with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		Code:       statusCode,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewUnauthorizedHTTPError returns the standard 401 error.
func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}

// NewForbiddenHTTPError returns the standard 403 error.
func NewForbiddenHTTPError() *HTTPError {
	return NewHTTPError(http.StatusForbidden, "Forbidden")
}
