package services

import "fmt"

// RequestError is the error returned by ActivityService when the activities
// service rejects a request with a structured failure response. Detail carries
// the service's own description of the failure and may be empty when the
// response body was missing or malformed.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("activities service rejected the request with status %d", e.Status)
	}
	return e.Detail
}

// NewRequestError creates a RequestError with the given status and detail message
func NewRequestError(status int, detail string) *RequestError {
	return &RequestError{
		Status: status,
		Detail: detail,
	}
}
