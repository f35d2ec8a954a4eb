package patterns

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeKey is returned when a time key is not a zero-padded
// 24-hour "HH:MM" string.
var ErrInvalidTimeKey = errors.New("invalid time key")

// ParseTimeKey splits an "HH:MM" key into hour and minute, enforcing the
// zero-padded 24-hour format used throughout the pattern table.
func ParseTimeKey(timeKey string) (hour, minute int, err error) {
	if len(timeKey) != 5 || timeKey[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeKey, timeKey)
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if timeKey[i] < '0' || timeKey[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeKey, timeKey)
		}
	}
	hour = int(timeKey[0]-'0')*10 + int(timeKey[1]-'0')
	minute = int(timeKey[3]-'0')*10 + int(timeKey[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeKey, timeKey)
	}
	return hour, minute, nil
}

// FormatTimeKey renders an hour and minute as a zero-padded "HH:MM" key.
func FormatTimeKey(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ApplyTimingCorrection shifts a time key by the configured offset,
// compensating for the feed publishing each result one draw early. A
// negative corrected minute borrows an hour (00 wraps to 23); a corrected
// minute of 60 or more carries one (23 wraps to 00).
//
// Only a single borrow or carry is performed, so the correction is exact
// for offsets strictly within (-60, 60) minutes. Malformed keys return
// ErrInvalidTimeKey.
func (c *Config) ApplyTimingCorrection(timeKey string) (string, error) {
	hour, minute, err := ParseTimeKey(timeKey)
	if err != nil {
		return "", err
	}
	minute += c.TimingOffsetMinutes
	switch {
	case minute < 0:
		minute += 60
		hour--
		if hour < 0 {
			hour = 23
		}
	case minute >= 60:
		minute -= 60
		hour++
		if hour > 23 {
			hour = 0
		}
	}
	return FormatTimeKey(hour, minute), nil
}

// TimeWindow returns the draw-interval window containing the key, in the
// "HH:MM-HH:MM" form used by the window analysis ("13:22" -> "13:20-13:24"
// at the standard 5-minute interval).
func (c *Config) TimeWindow(timeKey string) (string, error) {
	hour, minute, err := ParseTimeKey(timeKey)
	if err != nil {
		return "", err
	}
	interval := c.DrawIntervalMinutes
	if interval <= 0 {
		interval = 5
	}
	start := (minute / interval) * interval
	end := start + interval - 1
	endHour := hour
	if end >= 60 {
		end -= 60
		endHour++
		if endHour > 23 {
			endHour = 0
		}
	}
	return fmt.Sprintf("%s-%s", FormatTimeKey(hour, start), FormatTimeKey(endHour, end)), nil
}
