package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidPriorityLevel = errors.New("invalid priority level")
	ErrTitleRequired        = errors.New("title is required and must be a non-empty string")
	ErrDescriptionRequired  = errors.New("description is required and must be a non-empty string")
	ErrTitleEmpty           = errors.New("title must be a non-empty string")
	ErrDescriptionEmpty     = errors.New("description must be a non-empty string")
	ErrCompletedNotBoolean  = errors.New("completed must be a boolean")
	ErrPriorityInvalid      = errors.New("priority must be one of: low, medium, high")
)

// ValidationError is returned when a task payload field fails validation.
// Only the first failing field is reported.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
