package domain

import "slices"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority reports whether value names one of the known priority levels.
func ParsePriority(value string) (Priority, bool) {
	p := Priority(value)
	if !slices.Contains(priorities, p) {
		return "", false
	}
	return p, true
}

type Task struct {
	ID          uint64
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	CreatedAt   Timestamp
}

type TaskFilter struct {
	Completed *bool
}

type FieldState int

const (
	FieldAbsent FieldState = iota
	FieldPresent
	FieldMalformed
)

type StringField struct {
	State FieldState
	Value string
}

type BoolField struct {
	State FieldState
	Value bool
}

func (f StringField) IsSet() bool { return f.State != FieldAbsent }

func (f BoolField) IsSet() bool { return f.State != FieldAbsent }

// TaskInput is a decoded request payload. Each field records whether the key
// was sent and whether its JSON type was the expected one.
type TaskInput struct {
	Title       StringField
	Description StringField
	Completed   BoolField
	Priority    StringField
}

// NextTaskID returns one more than the highest id in tasks, or 1 when empty.
func NextTaskID(tasks []Task) uint64 {
	var maxID uint64
	for _, task := range tasks {
		maxID = max(maxID, task.ID)
	}
	return maxID + 1
}
