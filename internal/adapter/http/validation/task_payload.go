package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"
)

// BuildTaskInput turns a bound JSON object into a domain.TaskInput, recording
// for every known field whether it was sent and whether its JSON type fits.
// A nil map yields an empty input.
func BuildTaskInput(raw map[string]json.RawMessage) domain.TaskInput {
	return domain.TaskInput{
		Title:       stringField(raw, "title"),
		Description: stringField(raw, "description"),
		Completed:   boolField(raw, "completed"),
		Priority:    stringField(raw, "priority"),
	}
}

// IsNonObjectPayload reports whether a JSON binding error only means the body
// was empty or held a JSON value other than an object. Such bodies are
// treated as an empty object.
func IsNonObjectPayload(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.Is(err, io.EOF) || errors.As(err, &typeErr)
}

func stringField(raw map[string]json.RawMessage, name string) domain.StringField {
	value, ok := raw[name]
	if !ok {
		return domain.StringField{State: domain.FieldAbsent}
	}
	var s string
	if isJSONNull(value) || json.Unmarshal(value, &s) != nil {
		return domain.StringField{State: domain.FieldMalformed}
	}
	return domain.StringField{State: domain.FieldPresent, Value: s}
}

func boolField(raw map[string]json.RawMessage, name string) domain.BoolField {
	value, ok := raw[name]
	if !ok {
		return domain.BoolField{State: domain.FieldAbsent}
	}
	var b bool
	if isJSONNull(value) || json.Unmarshal(value, &b) != nil {
		return domain.BoolField{State: domain.FieldMalformed}
	}
	return domain.BoolField{State: domain.FieldPresent, Value: b}
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
