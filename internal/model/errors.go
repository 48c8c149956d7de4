package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the base lookup failure; the role-specific
	// variants below wrap it.
	ErrNotFound = errors.New("not found")

	// ErrStudentNotFound means the referenced student id is absent.
	ErrStudentNotFound = fmt.Errorf("student %w", ErrNotFound)
	// ErrInstructorNotFound means the referenced instructor id is absent.
	ErrInstructorNotFound = fmt.Errorf("instructor %w", ErrNotFound)
	// ErrCourseNotFound means the referenced course code is absent.
	ErrCourseNotFound = fmt.Errorf("course %w", ErrNotFound)

	// ErrDuplicateID rejects a registration whose id is already taken
	// by a student or an instructor.
	ErrDuplicateID = errors.New("id already registered")
	// ErrDuplicateCode rejects a course whose normalized code is
	// already registered.
	ErrDuplicateCode = errors.New("course code already registered")
	// ErrAlreadyEnrolled rejects an explicit enrollment for a pair
	// that already has one.
	ErrAlreadyEnrolled = errors.New("student already enrolled in course")
	// ErrNotCourseOwner rejects a grade or attendance action by an
	// instructor who does not teach the course.
	ErrNotCourseOwner = errors.New("instructor does not teach this course")
	// ErrInvalidCredentials means the id is unknown or the secret does
	// not match the stored digest.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed registration field. Recoverable:
// the caller re-prompts or aborts the action.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PersistenceError reports an I/O failure while flushing or hydrating
// one collection. The in-memory state stays authoritative; callers
// treat it as a warning, not a fatal condition.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
