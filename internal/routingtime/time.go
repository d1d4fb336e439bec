// Package routingtime implements a second-of-day clock used throughout the
// routing model. There is no calendar and no time zone: every value is a
// seconds offset into a single workday.
package routingtime

import (
	"fmt"
	"strconv"
	"strings"
)

// SecondsPerDay is the modulus every Time value is reduced against.
const SecondsPerDay = 86400

// Time is a second-of-day in [0, SecondsPerDay).
type Time int

// FromClock builds a Time from an "HH:MM:SS" or "HH:MM" string.
func FromClock(clock string) (Time, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("routingtime: invalid clock %q", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("routingtime: invalid hour in %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("routingtime: invalid minute in %q: %w", clock, err)
	}
	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("routingtime: invalid second in %q: %w", clock, err)
		}
	}

	return FromSeconds(hour*3600 + minute*60 + second), nil
}

// FromSeconds builds a Time from a raw second count, wrapping into a single
// day.
func FromSeconds(seconds int) Time {
	seconds %= SecondsPerDay
	if seconds < 0 {
		seconds += SecondsPerDay
	}
	return Time(seconds)
}

// DurationUntil returns other - t, the number of seconds from t to other.
func (t Time) DurationUntil(other Time) int {
	return int(other) - int(t)
}

// DurationAfter returns t - other, the number of seconds since other.
func (t Time) DurationAfter(other Time) int {
	return int(t) - int(other)
}

// String renders the time as "HH:MM:SS".
func (t Time) String() string {
	h := int(t) / 3600
	m := (int(t) % 3600) / 60
	s := int(t) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
