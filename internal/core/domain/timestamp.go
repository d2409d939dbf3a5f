package domain

import (
	"strings"
	"time"
)

// TimestampLayout is the ISO 8601 form new tasks are stamped with.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var (
	dateOnlyLayouts = []string{"2006-01-02", "2006-01", "2006"}
	zonedLayouts    = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04Z07:00"}
	localLayouts    = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}
)

// Timestamp is a creation time together with the exact text it was stored as.
// The text is written back untouched; Time is only used for ordering.
type Timestamp struct {
	Time  time.Time
	text  string
	valid bool
}

// NewTimestamp stamps t in UTC with millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	t = t.UTC().Truncate(time.Millisecond)
	return Timestamp{Time: t, text: t.Format(TimestampLayout), valid: true}
}

// ParseTimestamp keeps text as is and resolves it when it is an ISO 8601
// date or date-time. Date-only values are UTC, date-times without an offset
// are local time. Text that cannot be resolved still round-trips.
func ParseTimestamp(text string) Timestamp {
	t, ok := parseISOTime(strings.TrimSpace(text))
	return Timestamp{Time: t, text: text, valid: ok}
}

func (t Timestamp) String() string { return t.text }

// Valid reports whether the stored text resolved to a point in time.
func (t Timestamp) Valid() bool { return t.valid }

// Compare orders two timestamps by time. An unresolved timestamp compares
// equal to anything.
func (t Timestamp) Compare(other Timestamp) int {
	if !t.valid || !other.valid {
		return 0
	}
	return t.Time.Compare(other.Time)
}

func parseISOTime(value string) (time.Time, bool) {
	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	// Fractional seconds after the seconds field are accepted by time.Parse
	// even when the layout omits them.
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
