package service

import (
	"strings"
	"unicode"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"
)

// validateCreateInput checks every field; all of them are required.
func validateCreateInput(input domain.TaskInput) error {
	if !isNonEmptyString(input.Title) {
		return &domain.ValidationError{Field: "title", Err: domain.ErrTitleRequired}
	}
	if !isNonEmptyString(input.Description) {
		return &domain.ValidationError{Field: "description", Err: domain.ErrDescriptionRequired}
	}
	if input.Completed.State != domain.FieldPresent {
		return &domain.ValidationError{Field: "completed", Err: domain.ErrCompletedNotBoolean}
	}
	if !isPriority(input.Priority) {
		return &domain.ValidationError{Field: "priority", Err: domain.ErrPriorityInvalid}
	}
	return nil
}

// validateUpdateInput checks only the fields sent in the payload.
func validateUpdateInput(input domain.TaskInput) error {
	if input.Title.IsSet() && !isNonEmptyString(input.Title) {
		return &domain.ValidationError{Field: "title", Err: domain.ErrTitleEmpty}
	}
	if input.Description.IsSet() && !isNonEmptyString(input.Description) {
		return &domain.ValidationError{Field: "description", Err: domain.ErrDescriptionEmpty}
	}
	if input.Completed.IsSet() && input.Completed.State != domain.FieldPresent {
		return &domain.ValidationError{Field: "completed", Err: domain.ErrCompletedNotBoolean}
	}
	if input.Priority.IsSet() && !isPriority(input.Priority) {
		return &domain.ValidationError{Field: "priority", Err: domain.ErrPriorityInvalid}
	}
	return nil
}

func isNonEmptyString(field domain.StringField) bool {
	return field.State == domain.FieldPresent && trimText(field.Value) != ""
}

func isPriority(field domain.StringField) bool {
	if field.State != domain.FieldPresent {
		return false
	}
	_, ok := domain.ParsePriority(field.Value)
	return ok
}

// trimText strips the same leading and trailing whitespace as
// String.prototype.trim: U+FEFF is stripped, U+0085 is kept.
func trimText(value string) string {
	return strings.TrimFunc(value, isTrimmable)
}

func isTrimmable(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
