package api

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a 2xx response whose body is not a JSON object.
var ErrMalformedResponse = errors.New("malformed response body")

// ServiceError is a non-2xx answer from the service.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("convoy API error: status %d", e.Status)
	}
	return fmt.Sprintf("convoy API error: status %d (%s)", e.Status, e.Message)
}

// Message returns the server supplied message carried by err, or "" when the
// failure happened before the service could explain itself.
func Message(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return ""
}
