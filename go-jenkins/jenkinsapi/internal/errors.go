package internal

import (
	"errors"
	"fmt"
)

var ErrUnauthorized = errors.New("not authorized")
var ErrForbidden = errors.New("forbidden")

type ResourceNotFoundError struct {
	URL string
}

func (e ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

type UnexpectedResponseError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response code: %d, response body: %s", e.StatusCode, e.Body)
}
