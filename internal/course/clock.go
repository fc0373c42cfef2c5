package course

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock converts an HH:MM string to minutes since midnight. Single
// hour digits are accepted ("9:05"). ok is false for anything that is not
// a time of day, including the N/A sentinel.
func ParseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatClock renders minutes since midnight as HH:MM, wrapping values past
// midnight back onto the 24-hour clock.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatSpan renders a minute count as an HH:MM duration string. Unlike
// FormatClock it never wraps, so a span always round-trips through
// ParseClock as long as it stays under a day.
func FormatSpan(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
