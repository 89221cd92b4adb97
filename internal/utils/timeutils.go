package utils

import (
	"fmt"
	"time"
)

// ParseEventTime parses an event timestamp. Timestamps must be RFC 3339
// with an explicit offset; the result is normalised to UTC.
func ParseEventTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}
	return t.UTC(), nil
}
