package util

import "time"

// HourLabel renders t on a 12-hour clock without a leading zero, e.g. "3 PM".
func HourLabel(t time.Time) string {
	return t.Format("3 PM")
}
