package timeutil

import (
	"strings"
	"time"
)

// MatchDateLayout is the Football-API date format (dd.mm.yyyy).
const MatchDateLayout = "02.01.2006"

// FormatMatchDate formats a time as dd.mm.yyyy in its current location.
func FormatMatchDate(t time.Time) string {
	return t.Format(MatchDateLayout)
}

// ResolveMatchDate expands the keywords today, yesterday and tomorrow relative
// to now. Any other value is returned unchanged.
func ResolveMatchDate(value string, now time.Time) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "today":
		return FormatMatchDate(now)
	case "yesterday":
		return FormatMatchDate(now.AddDate(0, 0, -1))
	case "tomorrow":
		return FormatMatchDate(now.AddDate(0, 0, 1))
	default:
		return value
	}
}
