package util //nolint:revive // package name util hosts shared formatting helpers used across HTTP templates

import "time"

// FormatDuration renders an elapsed call time for the prototype screen.
// Zero or negative durations mean nothing was timed and render as "n/a";
// sub-millisecond values keep their precision, the rest are cut to ms.
func FormatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "n/a"
	case d < time.Millisecond:
		return d.String()
	default:
		return d.Truncate(time.Millisecond).String()
	}
}
