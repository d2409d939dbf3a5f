package validation

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseTaskID reads the leading integer of a path segment the way lenient
// integer parsers do: surrounding whitespace and trailing characters are
// ignored and a 0x prefix selects base 16. It reports false when no digits
// are found or the value cannot name a task.
func ParseTaskID(value string) (uint64, bool) {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	id, err := strconv.ParseUint(s[:end], base, 64)
	if err != nil || id == 0 || negative {
		return 0, false
	}
	return id, true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		return true
	}
	return false
}
