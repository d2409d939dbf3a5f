package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func bindPayload(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestBuildTaskInput_FullPayload(t *testing.T) {
	input := BuildTaskInput(bindPayload(t, `{"title":" A ","description":"d","completed":false,"priority":"low"}`))

	require.Equal(t, domain.StringField{State: domain.FieldPresent, Value: " A "}, input.Title)
	require.Equal(t, domain.StringField{State: domain.FieldPresent, Value: "d"}, input.Description)
	require.Equal(t, domain.BoolField{State: domain.FieldPresent, Value: false}, input.Completed)
	require.Equal(t, domain.StringField{State: domain.FieldPresent, Value: "low"}, input.Priority)
}

func TestBuildTaskInput_TracksAbsentAndMalformedFields(t *testing.T) {
	input := BuildTaskInput(bindPayload(t, `{"title":42,"completed":"true","priority":null}`))

	require.Equal(t, domain.FieldMalformed, input.Title.State)
	require.Equal(t, domain.FieldAbsent, input.Description.State)
	require.Equal(t, domain.FieldMalformed, input.Completed.State)
	require.Equal(t, domain.FieldMalformed, input.Priority.State)
}

func TestBuildTaskInput_NilMap(t *testing.T) {
	require.Equal(t, domain.TaskInput{}, BuildTaskInput(nil))
	require.Equal(t, domain.TaskInput{}, BuildTaskInput(bindPayload(t, "null")))
}

func TestIsNonObjectPayload(t *testing.T) {
	for _, body := range []string{"", "  ", "[]", `"title"`, "7"} {
		var raw map[string]json.RawMessage
		err := json.NewDecoder(strings.NewReader(body)).Decode(&raw)
		require.Error(t, err, body)
		require.True(t, IsNonObjectPayload(err), body)
	}

	var raw map[string]json.RawMessage
	err := json.NewDecoder(strings.NewReader(`{"title":`)).Decode(&raw)
	require.Error(t, err)
	require.False(t, IsNonObjectPayload(err))
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		in   string
		id   uint64
		isOK bool
	}{
		{in: "1", id: 1, isOK: true},
		{in: "42", id: 42, isOK: true},
		{in: " 7", id: 7, isOK: true},
		{in: "+3", id: 3, isOK: true},
		{in: "12abc", id: 12, isOK: true},
		{in: "0x1A", id: 26, isOK: true},
		{in: "abc"},
		{in: ""},
		{in: "0"},
		{in: "-2"},
		{in: "0x"},
		{in: "99999999999999999999999"},
	}

	for _, tt := range tests {
		id, ok := ParseTaskID(tt.in)
		require.Equal(t, tt.isOK, ok, tt.in)
		require.Equal(t, tt.id, id, tt.in)
	}
}
