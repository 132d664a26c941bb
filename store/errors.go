package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a record that does not exist and one owned by
	// a different admin; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a duplicate unique field on creation.
	ErrConflict = errors.New("already exists")
)

// ValidationError rejects malformed or missing input. It maps to a 4xx at
// the HTTP boundary and is never fatal to the process.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
