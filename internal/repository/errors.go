package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record exists for the requested id
var ErrNotFound = errors.New("record not found")

// RepositoryError wraps a storage or transport failure with the operation
// that hit it. The cause stays reachable through errors.Is / errors.As.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Wrap returns err wrapped in a *RepositoryError for op. ErrNotFound and nil
// pass through untouched so callers can keep comparing against them.
func Wrap(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	return &RepositoryError{Op: op, Err: err}
}

// IsNotFound reports whether err means the record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
