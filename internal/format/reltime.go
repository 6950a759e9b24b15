package format

import (
	"fmt"
	"time"
)

// RelativeTime renders the elapsed time between now and t in a compact
// human-readable form, like "5m ago" or "2h ago". Future timestamps and
// sub-minute ages render as "just now".
func RelativeTime(t, now time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	case age < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// RelativeTimestamp parses an RFC3339 timestamp and renders it relative to
// now. Unparseable timestamps are returned unchanged.
func RelativeTimestamp(timestamp string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return RelativeTime(t, now)
}
