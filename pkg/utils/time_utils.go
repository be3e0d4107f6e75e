package utils

import "time"

// FormatDisplay renders timestamps the way the feedback cards show them,
// e.g. "Jan 2, 2006 3:04 PM".
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
