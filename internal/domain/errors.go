package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ConflictError is returned when a write would break a uniqueness or
// foreign-key constraint.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e ConflictError) Error() string {
	switch {
	case e.Resource == "":
		return "conflict"
	case e.Reason == "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
	}
}

// Is enables errors.Is matching on ConflictError.
func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if ok {
		return true
	}
	_, ok = target.(*ConflictError)
	return ok
}

// ErrConflict is the sentinel error for integrity violations.
var ErrConflict = ConflictError{}
