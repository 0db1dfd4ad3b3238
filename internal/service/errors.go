package service

import (
	"errors"
	"fmt"
)

// StatusError reports a request the store answered with a non-success
// status. Body carries the raw response text, kept only for logging; the
// store promises nothing structured in failure bodies.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("store rejected request: status %d", e.Code)
	}
	return fmt.Sprintf("store rejected request: status %d: %s", e.Code, e.Body)
}

// IsRejected reports whether err is a store rejection rather than a
// transport failure.
func IsRejected(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
