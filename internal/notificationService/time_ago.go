package notification

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders the age of t relative to now, e.g. "3 hours ago".
// Timestamps in the future render as "Just now".
func FormatTimeAgo(now, t time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)

	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return plural(seconds/60, "minute")
	case seconds < 86400:
		return plural(seconds/3600, "hour")
	default:
		return plural(seconds/86400, "day")
	}
}

func plural(n int64, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
