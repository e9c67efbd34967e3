package replay

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp parsing for the recorded event streams.
//
// The platform stores timestamps as ISO-8601-like strings. Depending on which
// table they came from, they may carry an explicit UTC designator ("Z" or a
// "+hh:mm" suffix) or no timezone at all. A bare timestamp is always UTC, so
// normalization appends "+00:00" before parsing. The same rule is applied to
// both sides of every offset computation — normalizing only one side would
// shift every event by the local timezone.

// timestampLayouts are tried in order. Fractional seconds are optional in
// every layout.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-07",   // short offset, e.g. "+00"
	"2006-01-02 15:04:05.999999999Z07:00", // space separator
	"2006-01-02 15:04:05.999999999-07",
}

// ParseTimestamp parses a recorded timestamp string. Strings without a "+" or
// "Z" marker are treated as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if !strings.Contains(raw, "+") && !strings.Contains(raw, "Z") {
		raw += "+00:00"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// OffsetMs returns the elapsed milliseconds from sessionStart to eventTS.
// Both inputs are normalized independently with the same rule. The result may
// be negative for pathological data; callers decide what to do with events
// before session start. A parse failure on either side is returned as an
// error, and the caller must exclude the event rather than fail the replay.
func OffsetMs(eventTS, sessionStart string) (int64, error) {
	et, err := ParseTimestamp(eventTS)
	if err != nil {
		return 0, fmt.Errorf("event timestamp: %w", err)
	}
	st, err := ParseTimestamp(sessionStart)
	if err != nil {
		return 0, fmt.Errorf("session start: %w", err)
	}
	return et.Sub(st).Milliseconds(), nil
}
