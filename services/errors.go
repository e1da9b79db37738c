package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain failures surfaced to controllers. All of these are expected,
// recoverable conditions; anything else coming out of a service is an
// infrastructure error from the store.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateCourseCode = errors.New("course code already in use")
	ErrAlreadyRegistered   = errors.New("already registered for this course")
	ErrCourseUnavailable   = errors.New("course not found or not available")
	ErrNotOwner            = errors.New("registration belongs to another student")
	ErrNotActive           = errors.New("registration is not active")
	ErrHasRegistrations    = errors.New("course has existing registrations")
)

// ValidationError carries per-field messages for rejected input. It is
// returned before any persistence call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
